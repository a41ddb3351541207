package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/testutil"
)

func TestGameToJSON(t *testing.T) {
	g := newGame(t, "", "e4", "d5", "exd5", "Nf6")
	g.SetMetadata([]string{"Scandinavian"})
	g.Undo()

	jg := GameToJSON(g, nil)

	testutil.AssertEqual(t, jg.Metadata, []string{"Scandinavian"})
	testutil.AssertEqual(t, jg.Cursor, 2)
	testutil.AssertEqual(t, jg.SideToMove, "black")
	testutil.AssertEqual(t, jg.Status, "")
	testutil.AssertEqual(t, len(jg.Moves), 4)

	want := []JSONMove{
		{MoveNumber: 1, Color: "white", SAN: "e4", From: "e2", To: "e4", Kind: "DoubleStep"},
		{MoveNumber: 1, Color: "black", SAN: "d5", From: "d7", To: "d5", Kind: "DoubleStep"},
		{MoveNumber: 2, Color: "white", SAN: "exd5", From: "e4", To: "d5", Captured: "pawn"},
		{MoveNumber: 2, Color: "black", SAN: "Nf6", From: "g8", To: "f6"},
	}
	testutil.AssertEqual(t, jg.Moves, want)
}

func TestGameToJSON_BlackStart(t *testing.T) {
	g := newGame(t, "4k3/8/8/8/8/8/8/R3K3 b - - 0 12", "Kd7", "Rd1")

	jg := GameToJSON(g, nil)
	testutil.AssertEqual(t, jg.Moves[0].MoveNumber, 12)
	testutil.AssertEqual(t, jg.Moves[0].Color, "black")
	testutil.AssertEqual(t, jg.Moves[1].MoveNumber, 13)
	testutil.AssertEqual(t, jg.Moves[1].Color, "white")
	testutil.AssertEqual(t, jg.Status, "check")
}

func TestGameToJSON_Suggestions(t *testing.T) {
	g := newGame(t, "")
	suggestions := []chess.Move{
		{From: chess.MustSquare("e2"), To: chess.MustSquare("e4"), Kind: chess.DoubleStep, Text: "e4", Score: 0.5},
	}

	jg := GameToJSON(g, suggestions)
	testutil.AssertEqual(t, len(jg.Suggestions), 1)
	s := jg.Suggestions[0]
	testutil.AssertEqual(t, s.Color, "white")
	testutil.AssertEqual(t, s.MoveNumber, 0)
	if s.Score == nil || *s.Score != 0.5 {
		t.Errorf("suggestion score = %v; want 0.5", s.Score)
	}
}

func TestJSONWriter(t *testing.T) {
	t.Run("single game is an object", func(t *testing.T) {
		var buf bytes.Buffer
		jw := NewJSONWriter(&buf)
		testutil.AssertNoError(t, jw.WriteGame(newGame(t, "", "e4"), nil))
		testutil.AssertNoError(t, jw.Close())

		var jg JSONGame
		testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &jg))
		testutil.AssertEqual(t, jg.FEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	})

	t.Run("several games are an array", func(t *testing.T) {
		var buf bytes.Buffer
		jw := NewJSONWriter(&buf)
		testutil.AssertNoError(t, jw.WriteGame(newGame(t, ""), nil))
		testutil.AssertNoError(t, jw.WriteGame(newGame(t, "", "d4"), nil))
		testutil.AssertNoError(t, jw.Close())

		var games []JSONGame
		testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &games))
		testutil.AssertEqual(t, len(games), 2)
		testutil.AssertEqual(t, len(games[1].Moves), 1)
	})

	t.Run("nothing written", func(t *testing.T) {
		var buf bytes.Buffer
		testutil.AssertNoError(t, NewJSONWriter(&buf).Close())
		testutil.AssertEqual(t, buf.Len(), 0)
	})
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	text := config.NewConfigBuilder().WithOutput(&buf).Build()
	if _, ok := NewWriter(text).(*TextWriter); !ok {
		t.Error("NewWriter() without JSON did not return a *TextWriter")
	}

	js := config.NewConfigBuilder().WithOutput(&buf).WithJSON(true).Build()
	if _, ok := NewWriter(js).(*JSONWriter); !ok {
		t.Error("NewWriter() with JSON did not return a *JSONWriter")
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&buf).WithBoard(false).Build()
	tw := NewTextWriter(cfg)

	testutil.AssertNoError(t, tw.WriteGame(newGame(t, "", "e4"), nil))
	testutil.AssertNoError(t, tw.Close())
	testutil.AssertEqual(t, buf.String(), "1. [e4]\nBlack to move\n")
}
