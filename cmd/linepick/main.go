// Copyright 2025 The linepick Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the linepick interactive fuzzy finder and its msgpack
filter server.

linepick reads candidate lines from stdin, lets the user narrow them down by
typing a query on the controlling terminal and prints the chosen line to
stdout. It is meant to be composed in shell pipelines:

	vim $(git ls-files | linepick)

# Usage

Pick a file, starting with a query already typed:

	find . -type f | linepick -s main

Show 10 rows and drop duplicate lines:

	history | linepick -limit 10 -unique

Serve ranking requests for an editor instead of running the picker:

	linepick -serve -file candidates.txt

# Keys

	Ctrl-N, Down    move selection down (wraps)
	Ctrl-P, Up      move selection up (wraps)
	Backspace       delete the last query character
	Enter           print the selection and exit
	Ctrl-C          exit without printing (status 130)

When nothing matches, Enter prints None. If the terminal input ends before
Enter the current selection is printed.

# Screen

The picker paints at the bottom of the terminal: a prompt line with the query,
followed by up to -limit rows of matches, best first, with the selected row
inverted. Matched characters are emphasized with the [ui] match_color. The
rows are cleared on exit so only the printed selection remains.

# Configuration

Defaults are read from ~/.config/linepick/config.toml, created on first run.
Flags override the file:

	[picker]
	visible_limit = 20
	prompt = "> "
	unique = false

	[ui]
	match_color = "212"
	truncate = true

	[server]
	max_limit = 200
	max_query = 256

# Server Mode

With -serve, candidates come from -file and stdin carries a stream of msgpack
requests. See package server for the wire format.

	srv := server.NewServer(pool, cfg.Server, os.Stdin, os.Stdout)
	err := srv.Start()

# Command Line Flags

	-s, -search string
	    Query to start with
	-limit int
	    Number of match rows to show (default from config)
	-unique
	    Drop duplicate candidate lines
	-file string
	    Read candidates from a file instead of stdin
	-serve
	    Run the msgpack filter server instead of the picker
	-config string
	    Path to a config file
	-log string
	    Append logs to a file instead of stderr
	-d  Toggle debug logging
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bastiangx/linepick/internal/cli"
	"github.com/bastiangx/linepick/internal/logger"
	"github.com/bastiangx/linepick/internal/screen"
	"github.com/bastiangx/linepick/internal/tty"
	"github.com/bastiangx/linepick/internal/utils"
	"github.com/bastiangx/linepick/pkg/config"
	"github.com/bastiangx/linepick/pkg/search"
	"github.com/bastiangx/linepick/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "linepick"
	gh      = "https://github.com/bastiangx/linepick"
)

// exitInterrupted is the shell's status for a process ended by SIGINT
const exitInterrupted = 130

// sigHandler restores the terminal before exiting on SIGTERM or a SIGINT sent
// from outside the picker. In raw mode Ctrl-C arrives as input instead.
func sigHandler(cleanup func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		cleanup()
		os.Exit(exitInterrupted)
	}()
}

// main wires config, input and the chosen mode together.
// The picker and server packages hold the logic.
func main() {
	defaultConfig := config.DefaultConfig()

	var query string
	flag.StringVar(&query, "s", "", "Query to start with")
	flag.StringVar(&query, "search", "", "Query to start with")
	showVersion := flag.Bool("version", false, "Show current version")
	limit := flag.Int("limit", 0, fmt.Sprintf("Number of match rows to show (default from config, builtin %d)", defaultConfig.Picker.VisibleLimit))
	unique := flag.Bool("unique", false, "Drop duplicate candidate lines")
	file := flag.String("file", "", "Read candidates from a file instead of stdin")
	serveMode := flag.Bool("serve", false, "Run the msgpack filter server instead of the picker")
	configPath := flag.String("config", "", "Path to a config file")
	logPath := flag.String("log", "", "Append logs to a file instead of stderr")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logFile, err := logger.Setup(*debugMode, *logPath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	cfg, loadedFrom, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: (%s)", config.GetActiveConfigPath(loadedFrom))

	if *limit > 0 {
		cfg.Picker.VisibleLimit = *limit
	}
	if *unique {
		cfg.Picker.Unique = true
	}

	if *serveMode && *file == "" {
		log.Fatal("-serve reads requests from stdin, candidates must come from -file")
	}

	lines, err := readCandidates(*file)
	if err != nil {
		log.Fatalf("Failed to read candidates: %v", err)
	}
	if cfg.Picker.Unique {
		lines = utils.Unique(lines)
	}
	log.Debug("Candidates loaded", "count", len(lines), "limit", cfg.Picker.VisibleLimit)

	pool := search.NewConfiguration(lines, query, cfg.Picker.VisibleLimit)

	if *serveMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(pool, cfg.Server, os.Stdin, os.Stdout)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		logFile.Close()
		return
	}

	code := pick(pool, cfg)
	logFile.Close()
	os.Exit(code)
}

// readCandidates reads lines from path, or from stdin when path is empty
func readCandidates(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening candidates: %w", err)
		}
		defer f.Close()
		r = f
	}
	return utils.ReadLines(r)
}

// pick runs the interactive picker on the controlling terminal and prints the
// outcome. It returns the process exit status.
func pick(pool *search.Configuration, cfg *config.Config) int {
	t, err := tty.Open()
	if err != nil {
		log.Errorf("Failed to open terminal: %v", err)
		return 1
	}
	restore := sync.OnceFunc(func() {
		if err := t.Close(); err != nil {
			log.Errorf("Failed to restore terminal: %v", err)
		}
	})
	sigHandler(restore)

	styles := screen.NewStyles(t.Renderer(), cfg.UI.MatchColor)
	scr := screen.New(t, screen.Renderer{Prompt: cfg.Picker.Prompt}, styles, cfg.UI.Truncate)

	scr.Reserve(pool.VisibleLimit())
	outcome, err := cli.NewPicker(t, scr).Run(search.Blank(pool))
	scr.Clear(pool.VisibleLimit())
	restore()
	if err != nil {
		log.Errorf("Picker error: %v", err)
		return 1
	}

	line, ok := outcome.Output()
	if !ok {
		return exitInterrupted
	}
	fmt.Println(line)
	return 0
}

// printVersion shows the version banner on stderr
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ " + AppName + " ] Pick a line, fast.")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
