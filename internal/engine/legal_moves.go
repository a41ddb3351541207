package engine

import "github.com/lgbarn/chesslab-go/internal/chess"

// Legal reports whether the piece on from may move to to: the move must be
// reachable and must not leave the mover's own king attacked.
func Legal(pos *chess.Position, from, to chess.Square) (chess.MoveKind, bool) {
	kind, ok := Reachable(pos, from, to)
	if !ok {
		return kind, false
	}
	if LeavesKingInCheck(pos, from, to, kind) {
		return kind, false
	}
	return kind, true
}

// LegalMoves enumerates every legal move for the given colour, ordered by
// source square and then destination square. Moves carry From, To, Kind,
// Captured and PrevEnPassant; they are not linked to any arena.
func LegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if !pos.At(from).IsColour(colour) {
			continue
		}
		for to := chess.Square(0); to < chess.NumSquares; to++ {
			kind, ok := Legal(pos, from, to)
			if !ok {
				continue
			}
			moves = append(moves, NewMove(pos, from, to, kind))
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if !pos.At(from).IsColour(colour) {
			continue
		}
		for to := chess.Square(0); to < chess.NumSquares; to++ {
			if _, ok := Legal(pos, from, to); ok {
				return true
			}
		}
	}
	return false
}

// Candidates returns the squares, in square order, of pieces passing the
// filter that can legally move to to.
func Candidates(pos *chess.Position, to chess.Square, f Filter) []chess.Square {
	var squares []chess.Square
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if !f.matches(pos, from) {
			continue
		}
		if _, ok := Legal(pos, from, to); ok {
			squares = append(squares, from)
		}
	}
	return squares
}

// CountLegalMoves counts the leaf positions reachable in depth plies from
// pos with the side to move starting. depth 0 counts the position itself.
func CountLegalMoves(pos *chess.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := LegalMoves(pos, pos.SideToMove())
	if depth == 1 {
		return len(moves)
	}

	links := NewLinks()
	total := 0
	for i := range moves {
		m := Forward(pos, links, moves[i])
		total += CountLegalMoves(pos, depth-1)
		Backward(pos, links, m)
		links.Truncate(0)
	}
	return total
}
