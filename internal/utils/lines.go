package utils

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// maxLineSize bounds a single candidate line read from input
const maxLineSize = 1024 * 1024

// ReadLines reads one candidate per line from r.
// Line endings are stripped. Invalid UTF-8 is rejected before it can reach
// the search engine; the error names the offending line.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Bytes()
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("line %d: invalid UTF-8 input", lineNo)
		}
		lines = append(lines, TrimLineEnding(string(raw)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
