package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chesslab-go/internal/config"
	chesserr "github.com/lgbarn/chesslab-go/internal/errors"
	"github.com/lgbarn/chesslab-go/internal/output"
	"github.com/lgbarn/chesslab-go/internal/testutil"
)

const scholarsMate = `Scholar's mate
White
Black
1-0
Paris





1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7#
`

// writeRecord writes a game record into a temporary directory and returns
// its path.
func writeRecord(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newSession returns a session writing output and log to buffers.
func newSession(cfg *config.Config, coords, tokens string) (*session, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg.SetOutput(&out)
	cfg.SetLog(&log)
	return &session{cfg: cfg, coords: splitMoves(coords), tokens: splitMoves(tokens)}, &out, &log
}

func TestSession_Record(t *testing.T) {
	cfg := config.NewConfig()
	cfg.RecordFile = writeRecord(t, scholarsMate)
	s, out, log := newSession(cfg, "", "")

	testutil.AssertNoError(t, s.run())

	got := out.String()
	testutil.AssertContains(t, got, "8 r . b q k b . r   Scholar's mate")
	testutil.AssertContains(t, got, "4. [Qxf7]")
	testutil.AssertContains(t, got, "Black is checkmated")
	testutil.AssertContains(t, log.String(), "7 moves")
}

func TestSession_RecordAtPly(t *testing.T) {
	cfg := config.NewConfig()
	cfg.RecordFile = writeRecord(t, scholarsMate)
	cfg.Ply = 1
	cfg.Display.ShowFEN = true
	s, out, _ := newSession(cfg, "", "")

	testutil.AssertNoError(t, s.run())
	testutil.AssertContains(t, out.String(), "1. e4 [e5] 2. Bc4")
	testutil.AssertContains(t, out.String(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
}

func TestSession_RecordErrors(t *testing.T) {
	t.Run("illegal move names file and ply", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.RecordFile = writeRecord(t, strings.Repeat("\n", 10)+"1. e4 e5 2. Ke3\n")
		s, _, _ := newSession(cfg, "", "")

		err := s.run()
		var ge *chesserr.GameError
		if !stderrors.As(err, &ge) {
			t.Fatalf("run() error = %v; want *GameError", err)
		}
		testutil.AssertEqual(t, ge.PlyNum, 3)
		testutil.AssertEqual(t, ge.File, cfg.RecordFile)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.RecordFile = filepath.Join(t.TempDir(), "missing.txt")
		s, _, _ := newSession(cfg, "", "")
		testutil.AssertError(t, s.run())
	})

	t.Run("record and fen together", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.RecordFile = "game.txt"
		cfg.StartFEN = "8/8/8/8/8/8/8/K6k w - - 0 1"
		s, _, _ := newSession(cfg, "", "")
		if err := s.run(); !stderrors.Is(err, chesserr.ErrInvalidConfig) {
			t.Errorf("run() error = %v; want ErrInvalidConfig", err)
		}
	})
}

func TestSession_Moves(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Display.ShowBoard = false
	s, out, _ := newSession(cfg, "e2e4 e7e5", "Nf3 Nc6")

	testutil.AssertNoError(t, s.run())
	testutil.AssertEqual(t, out.String(), "1. e4 e5 2. Nf3 [Nc6]\nWhite to move\n")
}

func TestSession_IllegalCoordinateMove(t *testing.T) {
	cfg := config.NewConfig()
	s, out, _ := newSession(cfg, "e2e5", "")

	err := s.run()
	if !stderrors.Is(err, chesserr.ErrIllegalMove) {
		t.Errorf("run() error = %v; want ErrIllegalMove", err)
	}
	testutil.AssertEqual(t, out.Len(), 0, "nothing written after an error")
}

func TestSession_Suggest(t *testing.T) {
	cfg := config.NewConfig()
	cfg.StartFEN = "6k1/5ppp/8/8/8/8/8/R6K w - - 0 1"
	cfg.Display.ShowBoard = false
	cfg.Search.Suggest = true
	cfg.Search.Depth = 1
	s, out, _ := newSession(cfg, "", "")

	testutil.AssertNoError(t, s.run())
	got := out.String()
	testutil.AssertContains(t, got, "Top 1: a1-a8")
	testutil.AssertContains(t, got, "Ra8")
	testutil.AssertNotContains(t, got, "Top 2:")
}

func TestSession_Top(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Display.ShowBoard = false
	cfg.Search.Top = 3
	cfg.Search.Depth = 0
	cfg.Search.Workers = 2
	cfg.Verbosity = 2
	s, out, log := newSession(cfg, "", "")

	testutil.AssertNoError(t, s.run())
	got := out.String()
	testutil.AssertContains(t, got, "Top 3:")
	testutil.AssertNotContains(t, got, "Top 4:")
	testutil.AssertContains(t, log.String(), "Searching 1 plies for White..")
}

func TestSession_NoLegalMoves(t *testing.T) {
	cfg := config.NewConfig()
	cfg.StartFEN = "k7/8/1Q6/8/8/8/8/K7 b - - 0 1"
	cfg.Search.Suggest = true
	s, out, log := newSession(cfg, "", "")

	testutil.AssertNoError(t, s.run())
	testutil.AssertNotContains(t, out.String(), "Top 1")
	testutil.AssertContains(t, log.String(), "Black has no legal moves")
}

func TestSession_JSON(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Display.JSON = true
	cfg.Search.Top = 2
	cfg.Search.Depth = 0
	s, out, _ := newSession(cfg, "", "d4 d5")

	testutil.AssertNoError(t, s.run())

	var jg output.JSONGame
	testutil.AssertNoError(t, json.Unmarshal(out.Bytes(), &jg))
	testutil.AssertEqual(t, len(jg.Moves), 2)
	testutil.AssertEqual(t, jg.SideToMove, "white")
	testutil.AssertEqual(t, len(jg.Suggestions), 2)
}

func TestSession_Quiet(t *testing.T) {
	cfg := config.NewConfig()
	cfg.RecordFile = writeRecord(t, scholarsMate)
	cfg.Verbosity = 0
	s, _, log := newSession(cfg, "", "")

	testutil.AssertNoError(t, s.run())
	testutil.AssertEqual(t, log.Len(), 0)
}

func TestSession_Check(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.RecordFile = writeRecord(t, scholarsMate)
		cfg.CheckOnly = true
		s, out, _ := newSession(cfg, "", "")

		testutil.AssertNoError(t, s.run())
		testutil.AssertEqual(t, out.String(), cfg.RecordFile+": OK, 7 plies, 1 capture, 1 check, checkmate\n")
	})

	t.Run("illegal move", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.RecordFile = writeRecord(t, strings.Repeat("\n", 10)+"1. e4 e5 2. Ke3\n")
		cfg.CheckOnly = true
		s, out, _ := newSession(cfg, "", "")

		testutil.AssertError(t, s.run())
		testutil.AssertEqual(t, out.String(), cfg.RecordFile+": illegal move at ply 3: Ke3\n")
	})

	t.Run("no record", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.CheckOnly = true
		s, _, _ := newSession(cfg, "", "")
		if err := s.run(); !stderrors.Is(err, chesserr.ErrInvalidConfig) {
			t.Errorf("run() error = %v; want ErrInvalidConfig", err)
		}
	})
}
