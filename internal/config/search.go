package config

import (
	"fmt"

	"github.com/lgbarn/chesslab-go/internal/errors"
	"github.com/lgbarn/chesslab-go/internal/hashing"
	"github.com/lgbarn/chesslab-go/internal/search"
)

// SearchConfig holds settings for move suggestion.
type SearchConfig struct {
	// Depth is the number of plies searched below each candidate move.
	Depth int

	// Workers is the number of goroutines scoring root moves.
	Workers int

	// Suggest prints the best move for the side to move.
	Suggest bool

	// Top prints that many ranked moves, 0 for none.
	Top int

	// CacheSize is the number of leaf evaluations kept, 0 for no cache.
	CacheSize int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   search.DefaultDepth,
		Workers: 1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 {
		return fmt.Errorf("search depth %d is negative: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("worker count %d is below 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.Top < 0 {
		return fmt.Errorf("top move count %d is negative: %w", s.Top, errors.ErrInvalidConfig)
	}
	if s.CacheSize < 0 {
		return fmt.Errorf("cache size %d is negative: %w", s.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}

// Options returns the search options matching this configuration.
func (s *SearchConfig) Options() []search.Option {
	opts := []search.Option{search.WithWorkers(s.Workers)}
	if s.CacheSize > 0 {
		opts = append(opts, search.WithCache(hashing.NewEvalCache(s.CacheSize)))
	}
	return opts
}
