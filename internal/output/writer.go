package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/game"
)

// GameWriter is the interface for writing game views to output.
type GameWriter interface {
	// WriteGame writes the current view of a game and optional ranked
	// suggestions for the side to move.
	WriteGame(g *game.Game, suggestions []chess.Move) error

	// Close writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by the display configuration.
func NewWriter(cfg *config.Config) GameWriter {
	if cfg.Display.JSON {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg)
}

// TextWriter writes board diagrams and move lists.
type TextWriter struct {
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(cfg *config.Config) *TextWriter {
	return &TextWriter{cfg: cfg}
}

// WriteGame writes a game view as text.
func (tw *TextWriter) WriteGame(g *game.Game, suggestions []chess.Move) error {
	OutputGame(g, tw.cfg, suggestions)
	return nil
}

// Close closes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes game views in JSON format. A single view is written
// as an object; several are written as an array on Close.
type JSONWriter struct {
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a game view for output on Close.
func (jw *JSONWriter) WriteGame(g *game.Game, suggestions []chess.Move) error {
	jw.games = append(jw.games, GameToJSON(g, suggestions))
	return nil
}

// Close writes the buffered views.
func (jw *JSONWriter) Close() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")

	var err error
	if len(jw.games) == 1 {
		err = enc.Encode(jw.games[0])
	} else {
		err = enc.Encode(jw.games)
	}
	jw.games = jw.games[:0]
	return err
}
