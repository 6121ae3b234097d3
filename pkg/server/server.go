package server

import (
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/linepick/pkg/config"
	"github.com/bastiangx/linepick/pkg/search"
)

// Server answers filter requests over a msgpack stream
type Server struct {
	pool         *search.Configuration
	limits       config.ServerConfig
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a server ranking pool, reading requests from r and
// writing responses to w
func NewServer(pool *search.Configuration, limits config.ServerConfig, r io.Reader, w io.Writer) *Server {
	return &Server{
		pool:    pool,
		limits:  limits,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start serves requests until the input ends.
// A request that is valid msgpack but not a FilterRequest gets an error
// response; a broken stream stops the server.
func (s *Server) Start() error {
	log.Debug("Starting server", "candidates", s.pool.Len())

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Client closed input", "requests", s.requestCount)
				return nil
			}
			return fmt.Errorf("reading request: %w", err)
		}
		s.requestCount++

		var req FilterRequest
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			log.Errorf("Unmarshaling request: %v", err)
			if err := s.send(FilterError{Error: "invalid request", Code: CodeBadRequest}); err != nil {
				return err
			}
			continue
		}

		if err := s.send(s.handleFilter(req)); err != nil {
			return err
		}
	}
}

// handleFilter validates a request and ranks the pool against its query
func (s *Server) handleFilter(req FilterRequest) any {
	if n := utf8.RuneCountInString(req.Query); n > s.limits.MaxQuery {
		log.Debug("Query too long", "id", req.ID, "length", n)
		return FilterError{
			ID:    req.ID,
			Error: fmt.Sprintf("query exceeds maximum length of %d characters", s.limits.MaxQuery),
			Code:  CodeBadRequest,
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.pool.VisibleLimit()
	}
	limit = min(limit, s.limits.MaxLimit)

	start := time.Now()
	ranked := search.Rank(s.pool.Choices(), req.Query)
	elapsed := time.Since(start)

	matches := make([]FilterMatch, 0, min(limit, len(ranked)))
	for i, r := range ranked {
		if i >= limit {
			break
		}
		matches = append(matches, FilterMatch{
			Candidate: r.Choice,
			Rank:      i + 1,
			Positions: r.Positions,
		})
	}

	log.Debugf("Took [ %v ] for query '%s'", elapsed, req.Query)
	return FilterResponse{
		ID:        req.ID,
		Matches:   matches,
		Count:     len(ranked),
		TimeTaken: elapsed.Microseconds(),
	}
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
