package engine

import "github.com/lgbarn/chesslab-go/internal/chess"

// pawnReach reports whether the pawn on from can move to to.
// Double steps and en-passant captures are tagged through the returned kind.
func pawnReach(pos *chess.Position, from, to chess.Square) (chess.MoveKind, bool) {
	pawn := pos.At(from)
	dir := chess.PawnDirection(pawn.Colour)
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	target := pos.At(to)

	switch {
	case df == 0 && dr == dir:
		return chess.Normal, target.IsEmpty()

	case df == 0 && dr == 2*dir:
		if from.Rank() != chess.PawnRank(pawn.Colour) || !target.IsEmpty() {
			return chess.Normal, false
		}
		if !pos.At(from.Offset(0, dir)).IsEmpty() {
			return chess.Normal, false
		}
		return chess.DoubleStep, true

	case abs(df) == 1 && dr == dir:
		if target.IsColour(pawn.Colour.Opposite()) {
			return chess.Normal, true
		}
		if target.IsEmpty() && isEnPassantCapture(pos, pawn.Colour, from, to) {
			return chess.EnPassant, true
		}
	}
	return chess.Normal, false
}

// isEnPassantCapture checks that to is the live en-passant target and that
// the double-stepped enemy pawn sits beside from.
func isEnPassantCapture(pos *chess.Position, colour chess.Colour, from, to chess.Square) bool {
	target, ok := pos.EnPassantTarget()
	if !ok || target != to {
		return false
	}
	return pos.At(enPassantVictim(from, to)).Is(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn removed by an en-passant
// capture from -> to.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.NewSquare(to.File(), from.Rank())
}

// pawnAttacks reports whether a pawn of the given colour on from attacks to.
// Pawns attack diagonally forward only.
func pawnAttacks(colour chess.Colour, from, to chess.Square) bool {
	return abs(to.File()-from.File()) == 1 && to.Rank()-from.Rank() == chess.PawnDirection(colour)
}
