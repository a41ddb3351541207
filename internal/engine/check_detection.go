package engine

import "github.com/lgbarn/chesslab-go/internal/chess"

// Filter narrows the attackers considered by IsAttacked and Candidates.
type Filter struct {
	Colour chess.Colour // attacker colour
	Piece  chess.Piece  // attacker kind, Empty for any
	File   int          // attacker file 0-7, -1 for any
	Rank   int          // attacker rank 0-7, -1 for any
}

// ByColour returns a filter matching every piece of the given colour.
func ByColour(colour chess.Colour) Filter {
	return Filter{Colour: colour, Piece: chess.Empty, File: -1, Rank: -1}
}

// matches reports whether the occupant on sq passes the filter.
func (f Filter) matches(pos *chess.Position, sq chess.Square) bool {
	o := pos.At(sq)
	if !o.IsColour(f.Colour) {
		return false
	}
	if f.Piece != chess.Empty && o.Piece != f.Piece {
		return false
	}
	if f.File >= 0 && sq.File() != f.File {
		return false
	}
	if f.Rank >= 0 && sq.Rank() != f.Rank {
		return false
	}
	return true
}

// Attack is the result of an attack scan.
type Attack struct {
	From  chess.Square // first attacker in square order, NoSquare if none
	Count int          // number of attackers found
}

// Found reports whether at least one attacker was found.
func (a Attack) Found() bool {
	return a.Count > 0
}

// Double reports whether two or more pieces attack the target.
func (a Attack) Double() bool {
	return a.Count > 1
}

// IsAttacked scans the board in square order for pieces passing the filter
// that attack target.
func IsAttacked(pos *chess.Position, target chess.Square, f Filter) Attack {
	result := Attack{From: chess.NoSquare}
	if !target.Valid() {
		return result
	}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if sq == target || !f.matches(pos, sq) {
			continue
		}
		if attacks(pos, sq, target) {
			if result.Count == 0 {
				result.From = sq
			}
			result.Count++
		}
	}
	return result
}

// Checkers returns the attack on the given colour's king.
func Checkers(pos *chess.Position, colour chess.Colour) Attack {
	king := pos.King(colour)
	if !king.Valid() {
		panic("engine: no " + colour.String() + " king on the board")
	}
	return IsAttacked(pos, king, ByColour(colour.Opposite()))
}

// InCheck returns true if the given colour's king is attacked.
func InCheck(pos *chess.Position, colour chess.Colour) bool {
	return Checkers(pos, colour).Found()
}

// LeavesKingInCheck reports whether moving the piece on from to to would
// leave the mover's own king attacked. The board is restored before
// returning.
func LeavesKingInCheck(pos *chess.Position, from, to chess.Square, kind chess.MoveKind) bool {
	mover := pos.At(from)
	if mover.IsEmpty() {
		return false
	}

	captured := pos.At(to)
	victimSq := chess.NoSquare
	var victim chess.Occupant
	if kind == chess.EnPassant {
		victimSq = enPassantVictim(from, to)
		victim = pos.At(victimSq)
	}
	wKing, bKing := pos.WKing, pos.BKing

	defer func() {
		pos.Squares[from] = mover
		pos.Squares[to] = captured
		if victimSq != chess.NoSquare {
			pos.Squares[victimSq] = victim
		}
		pos.WKing, pos.BKing = wKing, bKing
	}()

	pos.Clear(from)
	if victimSq != chess.NoSquare {
		pos.Clear(victimSq)
	}
	pos.Put(to, mover)

	return InCheck(pos, mover.Colour)
}
