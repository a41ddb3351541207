// chesslab replays, checks and analyses chess games from the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chesslab-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesslab version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := loadConfig()
	applyFlags(cfg, setFlags())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	s := &session{
		cfg:    cfg,
		coords: splitMoves(*coordMoves),
		tokens: splitMoves(*sanMoves),
	}
	if err := s.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig returns the defaults, overlaid with the -config file if given.
func loadConfig() *config.Config {
	cfg := config.NewConfig()
	if *configFile == "" {
		return cfg
	}

	if err := cfg.LoadFile(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config file %s: %v\n", *configFile, err)
		os.Exit(1)
	}
	return cfg
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesslab [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays a chess game and suggests moves for the side to move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chesslab -f game.txt -ply 20 -top 3\n")
	fmt.Fprintf(os.Stderr, "  chesslab -san \"e4 e5 Nf3 Nc6 Bb5\" -suggest -depth 2\n")
	fmt.Fprintf(os.Stderr, "  chesslab -fen \"6k1/5ppp/8/8/8/8/8/R6K w - - 0 1\" -suggest\n")
}
