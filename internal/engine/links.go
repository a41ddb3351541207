package engine

import (
	"fmt"

	"github.com/lgbarn/chesslab-go/internal/chess"
)

// Links is an append-only table of linked secondary moves: castling rook
// hops and en-passant removals. A primary move refers to its entry by index.
type Links struct {
	moves []chess.Move
}

// NewLinks creates an empty link table.
func NewLinks() *Links {
	return &Links{}
}

// Add appends a linked move and returns its index.
func (l *Links) Add(m chess.Move) int {
	l.moves = append(l.moves, m)
	return len(l.moves) - 1
}

// At returns the linked move at index i. An index outside the table is a
// programming error and panics.
func (l *Links) At(i int) chess.Move {
	if i < 0 || i >= len(l.moves) {
		panic(fmt.Sprintf("engine: link index %d out of range [0,%d)", i, len(l.moves)))
	}
	return l.moves[i]
}

// Len returns the number of linked moves.
func (l *Links) Len() int {
	return len(l.moves)
}

// Truncate drops every linked move at index n and beyond.
func (l *Links) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(l.moves) {
		l.moves = l.moves[:n]
	}
}
