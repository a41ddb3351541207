// Package config provides configuration for chesslab.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesslab-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Grouped settings
	Search  *SearchConfig
	Display *DisplayConfig

	// Input
	RecordFile string // Game record to load, if any
	StartFEN   string // Starting position, if not the standard one
	Ply        int    // Move index to show after loading, -1 = start
	CheckOnly  bool   // Validate the record and print a summary only

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// EndOfGame as Ply shows the position after the last recorded move.
const EndOfGame = int(^uint(0) >> 1)

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Display:    NewDisplayConfig(),
		Ply:        EndOfGame,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for normal program output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for log and progress output.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every configuration group.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return c.Search.Validate()
}

// Logf writes a log line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity >= level && c.LogFile != nil {
		fmt.Fprintf(c.LogFile, format, args...)
	}
}
