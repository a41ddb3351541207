package output

import (
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/game"
)

// JSONGame represents a game view in JSON format.
type JSONGame struct {
	Metadata    []string   `json:"metadata,omitempty"`
	Moves       []JSONMove `json:"moves"`
	Cursor      int        `json:"cursor"`
	FEN         string     `json:"fen"`
	SideToMove  string     `json:"sideToMove"`
	Status      string     `json:"status,omitempty"`
	Suggestions []JSONMove `json:"suggestions,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int      `json:"moveNumber,omitempty"`
	Color      string   `json:"color"` // "white" or "black"
	SAN        string   `json:"san"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	Kind       string   `json:"kind,omitempty"`
	Captured   string   `json:"captured,omitempty"`
	Score      *float64 `json:"score,omitempty"`
}

// GameToJSON converts a game view to its JSON form.
func GameToJSON(g *game.Game, suggestions []chess.Move) *JSONGame {
	jg := &JSONGame{
		Metadata:   g.Metadata(),
		Moves:      make([]JSONMove, 0, g.Len()),
		Cursor:     g.Cursor(),
		FEN:        g.FEN(),
		SideToMove: colorName(g.SideToMove()),
		Status:     g.Status().String(),
	}

	start := g.StartPly()
	for i, m := range g.Moves() {
		ply := start + i
		jm := convertMove(m, plyColour(ply))
		jm.MoveNumber = ply/2 + 1
		jg.Moves = append(jg.Moves, jm)
	}

	for _, m := range suggestions {
		jm := convertMove(m, g.SideToMove())
		score := m.Score
		jm.Score = &score
		jg.Suggestions = append(jg.Suggestions, jm)
	}
	return jg
}

func convertMove(m chess.Move, colour chess.Colour) JSONMove {
	jm := JSONMove{
		Color:    colorName(colour),
		SAN:      m.Text,
		From:     m.From.String(),
		To:       m.To.String(),
		Captured: capturedName(m),
	}
	if m.Kind != chess.Normal {
		jm.Kind = m.Kind.String()
	}
	return jm
}

func plyColour(ply int) chess.Colour {
	if ply%2 == 0 {
		return chess.White
	}
	return chess.Black
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func capturedName(m chess.Move) string {
	switch {
	case m.Kind == chess.EnPassant:
		return "pawn"
	case !m.Captured.IsEmpty():
		return strings.ToLower(m.Captured.Piece.String())
	}
	return ""
}
