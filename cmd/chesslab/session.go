package main

import (
	"fmt"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/errors"
	"github.com/lgbarn/chesslab-go/internal/game"
	"github.com/lgbarn/chesslab-go/internal/output"
	"github.com/lgbarn/chesslab-go/internal/parser"
	"github.com/lgbarn/chesslab-go/internal/processing"
	"github.com/lgbarn/chesslab-go/internal/search"
)

// session holds one run of the program: the game to build and the moves
// to play on top of it.
type session struct {
	cfg    *config.Config
	coords []string // coordinate moves, e.g. "e2e4"
	tokens []string // notation moves, e.g. "Nf3"
}

// run builds the game, steps to the requested ply, ranks moves if asked
// and writes the result.
func (s *session) run() error {
	if s.cfg.CheckOnly {
		return s.check()
	}

	g, err := s.buildGame()
	if err != nil {
		return err
	}

	if s.cfg.Ply != config.EndOfGame {
		g.Seek(s.cfg.Ply)
		s.cfg.Logf(2, "Showing position after move %d of %d\n", g.Cursor()+1, g.Len())
	}

	suggestions := s.suggest(g)

	w := output.NewWriter(s.cfg)
	if err := w.WriteGame(g, suggestions); err != nil {
		return err
	}
	return w.Close()
}

// check replays the record without showing it and prints a summary line.
func (s *session) check() error {
	cfg := s.cfg
	if cfg.RecordFile == "" {
		return fmt.Errorf("-check needs a game record: %w", errors.ErrInvalidConfig)
	}

	rec, err := parser.ReadRecordFile(cfg.RecordFile)
	if err != nil {
		return err
	}

	result := processing.ValidateRecord(rec)
	if !result.Valid {
		fmt.Fprintf(cfg.OutputFile, "%s: %s\n", cfg.RecordFile, result.ErrorMsg)
		return result.Err
	}

	fmt.Fprintf(cfg.OutputFile, "%s: OK, %s\n", cfg.RecordFile, result.Analysis)
	cfg.Logf(2, "Final position %s, score %+.2f\n", result.Analysis.FinalFEN, result.Analysis.FinalScore)
	return nil
}

// buildGame loads the record or starting position, then plays any
// command-line moves at the end of it.
func (s *session) buildGame() (*game.Game, error) {
	cfg := s.cfg
	if cfg.RecordFile != "" && cfg.StartFEN != "" {
		return nil, fmt.Errorf("a game record and a FEN cannot both be given: %w", errors.ErrInvalidConfig)
	}

	g := game.New()
	switch {
	case cfg.RecordFile != "":
		rec, err := parser.ReadRecordFile(cfg.RecordFile)
		if err != nil {
			return nil, err
		}
		if err := g.LoadRecord(rec); err != nil {
			return nil, err
		}
		g.FastForward()
		cfg.Logf(1, "Loaded %s: %d moves\n", cfg.RecordFile, g.Len())
		if title := rec.Title(); title != "" {
			cfg.Logf(2, "%s\n", title)
		}

	case cfg.StartFEN != "":
		var err error
		if g, err = game.NewFromFEN(cfg.StartFEN); err != nil {
			return nil, err
		}
		cfg.Logf(2, "Starting from %s\n", cfg.StartFEN)
	}

	for _, mv := range s.coords {
		kind, err := g.ApplyCoordinates(mv)
		if err != nil {
			return nil, err
		}
		s.logMove(g, kind)
	}
	for _, tok := range s.tokens {
		m, err := g.ApplyNotation(tok)
		if err != nil {
			return nil, err
		}
		s.logMove(g, m.Kind)
	}
	return g, nil
}

// logMove reports the move just played at the highest verbosity.
func (s *session) logMove(g *game.Game, kind chess.MoveKind) {
	if s.cfg.Verbosity < 2 {
		return
	}
	texts := g.MoveTexts()
	text := texts[g.Cursor()]
	if kind != chess.Normal {
		s.cfg.Logf(2, "%d: %s (%s)", g.Cursor()+1, text, kind)
	} else {
		s.cfg.Logf(2, "%d: %s", g.Cursor()+1, text)
	}
	if status := g.Status(); status != chess.NoCheck {
		s.cfg.Logf(2, " %s", status)
	}
	s.cfg.Logf(2, "\n")
}

// suggest ranks the moves of the side to move when suggestions are on.
// It returns the Top best moves, or the single best one for Suggest.
func (s *session) suggest(g *game.Game) []chess.Move {
	sc := s.cfg.Search
	n := sc.Top
	if n == 0 && sc.Suggest {
		n = 1
	}
	if n == 0 {
		return nil
	}

	side := g.SideToMove()
	s.cfg.Logf(1, "Searching %d plies for %s", sc.Depth+1, side)
	opts := sc.Options()
	if s.cfg.Verbosity >= 2 {
		opts = append(opts, search.WithProgress(func(int) {
			s.cfg.Logf(2, ".")
		}))
	}
	ranked := g.Rank(side, sc.Depth, opts...)
	s.cfg.Logf(1, "\n")

	if len(ranked) == 0 {
		s.cfg.Logf(1, "%s has no legal moves\n", side)
		return nil
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
