package engine

import "github.com/lgbarn/chesslab-go/internal/chess"

// reachFunc decides whether the piece on from can reach to, ignoring
// whether the move would expose its own king (except for king steps).
type reachFunc func(pos *chess.Position, from, to chess.Square) (chess.MoveKind, bool)

var reachers = [chess.NumPieceValues]reachFunc{
	chess.Pawn:   pawnReach,
	chess.Knight: knightReach,
	chess.Bishop: bishopReach,
	chess.Rook:   rookReach,
	chess.Queen:  queenReach,
	chess.King:   kingReach,
}

// Reachable reports whether the piece on from may move to to under its
// movement rules. The returned kind tags double steps, en-passant captures
// and castles. Moves that leave a non-king piece's own king attacked are
// still reported as reachable; use Legal to exclude them.
func Reachable(pos *chess.Position, from, to chess.Square) (chess.MoveKind, bool) {
	if !from.Valid() || !to.Valid() || from == to {
		return chess.Normal, false
	}
	mover := pos.At(from)
	if mover.IsEmpty() {
		return chess.Normal, false
	}
	if pos.At(to).IsColour(mover.Colour) {
		return chess.Normal, false
	}
	return reachers[mover.Piece](pos, from, to)
}

// attacks reports whether the occupant on from attacks to. Unlike
// Reachable, pawns attack only diagonally and kings only adjacent squares,
// and the content of to is not considered.
func attacks(pos *chess.Position, from, to chess.Square) bool {
	o := pos.At(from)
	switch o.Piece {
	case chess.Pawn:
		return pawnAttacks(o.Colour, from, to)
	case chess.Knight:
		_, ok := knightReach(pos, from, to)
		return ok
	case chess.Bishop:
		_, ok := bishopReach(pos, from, to)
		return ok
	case chess.Rook:
		_, ok := rookReach(pos, from, to)
		return ok
	case chess.Queen:
		_, ok := queenReach(pos, from, to)
		return ok
	case chess.King:
		return kingAttacks(from, to)
	}
	return false
}
