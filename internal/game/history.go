// Package game holds a playing session: the current position, the
// replayable move history and the metadata of a loaded record.
package game

import (
	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/engine"
)

// History is the ordered log of committed moves with a cursor. Moves up to
// and including the cursor are applied to the position; moves after it can
// be redone until a new move is committed.
type History struct {
	moves  []chess.Move
	links  *engine.Links
	cursor int
}

// NewHistory creates an empty history with the cursor at the initial
// position.
func NewHistory() *History {
	return &History{
		links:  engine.NewLinks(),
		cursor: -1,
	}
}

// Commit discards the moves after the cursor, applies from -> to to the
// position and records it. kind must come from engine.Legal.
func (h *History) Commit(pos *chess.Position, from, to chess.Square, kind chess.MoveKind, text string) chess.Move {
	h.truncate()

	m := engine.NewMove(pos, from, to, kind)
	m.Text = text
	m = engine.Forward(pos, h.links, m)

	h.moves = append(h.moves, m)
	h.cursor++
	return m
}

// truncate drops the moves after the cursor and the linked moves they own.
func (h *History) truncate() {
	for i := h.cursor + 1; i < len(h.moves); i++ {
		if h.moves[i].HasLink() {
			h.links.Truncate(h.moves[i].Link)
			break
		}
	}
	h.moves = h.moves[:h.cursor+1]
}

// Undo rolls back the move at the cursor. It returns false at the initial
// position.
func (h *History) Undo(pos *chess.Position) bool {
	if h.cursor < 0 {
		return false
	}
	engine.Backward(pos, h.links, h.moves[h.cursor])
	h.cursor--
	return true
}

// Redo reapplies the move after the cursor. It returns false at the end
// of the history.
func (h *History) Redo(pos *chess.Position) bool {
	if h.cursor+1 >= len(h.moves) {
		return false
	}
	h.cursor++
	engine.Forward(pos, h.links, h.moves[h.cursor])
	return true
}

// Rewind undoes every applied move.
func (h *History) Rewind(pos *chess.Position) {
	for h.Undo(pos) {
	}
}

// FastForward redoes every move after the cursor.
func (h *History) FastForward(pos *chess.Position) {
	for h.Redo(pos) {
	}
}

// Seek moves the cursor to target, clamped to [-1, Len()-1].
func (h *History) Seek(pos *chess.Position, target int) {
	if target < -1 {
		target = -1
	}
	if target > len(h.moves)-1 {
		target = len(h.moves) - 1
	}
	for h.cursor > target && h.Undo(pos) {
	}
	for h.cursor < target && h.Redo(pos) {
	}
}

// Cursor returns the index of the last applied move, -1 at the start.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of recorded moves, applied or not.
func (h *History) Len() int {
	return len(h.moves)
}

// Moves returns a copy of the recorded moves.
func (h *History) Moves() []chess.Move {
	moves := make([]chess.Move, len(h.moves))
	copy(moves, h.moves)
	return moves
}

// Current returns the move at the cursor.
func (h *History) Current() (chess.Move, bool) {
	if h.cursor < 0 {
		return chess.Move{}, false
	}
	return h.moves[h.cursor], true
}

// Texts returns the display text of every recorded move.
func (h *History) Texts() []string {
	texts := make([]string, len(h.moves))
	for i, m := range h.moves {
		texts[i] = m.Text
	}
	return texts
}
