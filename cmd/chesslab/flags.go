// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/search"
)

var (
	// Input options
	recordFile = flag.String("f", "", "Game record to load (10 metadata lines, then moves)")
	startFEN   = flag.String("fen", "", "Start a new game from this FEN position")
	coordMoves = flag.String("moves", "", "Coordinate moves to play, e.g. \"e2e4 e7e5\"")
	sanMoves   = flag.String("san", "", "Notation moves to play, e.g. \"e4 e5 Nf3\"")
	showPly    = flag.Int("ply", config.EndOfGame, "Show the position after move index N (-1 = start, default: last move)")
	configFile = flag.String("config", "", "YAML configuration file")
	checkOnly  = flag.Bool("check", false, "Check that every move of the -f record is legal and print a summary")

	// Search options
	depth   = flag.Int("depth", search.DefaultDepth, "Plies searched below each candidate move")
	workers = flag.Int("workers", 1, "Number of goroutines scoring candidate moves")
	suggest = flag.Bool("suggest", false, "Print the best move for the side to move")
	top     = flag.Int("top", 0, "Print the N best moves for the side to move")
	cache   = flag.Int("cache", 0, "Cache up to N leaf evaluations (0 = no cache)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	flipBoard  = flag.Bool("flip", false, "Show the board from Black's side")
	noBoard    = flag.Bool("noboard", false, "Don't print the board")
	noMoves    = flag.Bool("nomoves", false, "Don't print the move list")
	showFEN    = flag.Bool("showfen", false, "Print the FEN of the shown position")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	lineLength = flag.Int("w", 80, "Maximum move list line length")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	quiet   = flag.Bool("q", false, "Silent mode (no diagnostics)")
	verbose = flag.Bool("v", false, "Running commentary and search progress")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies command-line flags to the configuration. Flags that
// were not given leave values from a configuration file alone.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyInputFlags(cfg, set)
	applySearchFlags(cfg, set)
	applyDisplayFlags(cfg, set)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyInputFlags configures what game is loaded and which ply is shown.
func applyInputFlags(cfg *config.Config, set map[string]bool) {
	if set["f"] {
		cfg.RecordFile = *recordFile
	}
	if set["fen"] {
		cfg.StartFEN = *startFEN
	}
	if set["ply"] {
		cfg.Ply = *showPly
	}
	if set["check"] {
		cfg.CheckOnly = *checkOnly
	}
}

// applySearchFlags configures move suggestion.
func applySearchFlags(cfg *config.Config, set map[string]bool) {
	if set["depth"] {
		cfg.Search.Depth = *depth
	}
	if set["workers"] {
		cfg.Search.Workers = *workers
	}
	if set["suggest"] {
		cfg.Search.Suggest = *suggest
	}
	if set["top"] {
		cfg.Search.Top = *top
	}
	if set["cache"] {
		cfg.Search.CacheSize = *cache
	}
}

// applyDisplayFlags configures what is printed.
func applyDisplayFlags(cfg *config.Config, set map[string]bool) {
	if set["flip"] {
		cfg.Display.Flipped = *flipBoard
	}
	if set["noboard"] {
		cfg.Display.ShowBoard = !*noBoard
	}
	if set["nomoves"] {
		cfg.Display.ShowMoves = !*noMoves
	}
	if set["showfen"] {
		cfg.Display.ShowFEN = *showFEN
	}
	if set["json"] {
		cfg.Display.JSON = *jsonOutput
	}
	if set["w"] {
		cfg.Display.MaxLineLength = *lineLength
	}
}

// splitMoves splits a space or comma separated move list.
func splitMoves(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}
