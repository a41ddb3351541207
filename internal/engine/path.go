package engine

import "github.com/lgbarn/chesslab-go/internal/chess"

// isDiagonal reports whether from and to share a diagonal.
func isDiagonal(from, to chess.Square) bool {
	return from != to && abs(to.File()-from.File()) == abs(to.Rank()-from.Rank())
}

// isStraight reports whether from and to share a file or a rank.
func isStraight(from, to chess.Square) bool {
	return from != to && (to.File() == from.File() || to.Rank() == from.Rank())
}

// isPathClear checks that every square strictly between from and to is empty.
// from and to must share a line.
func isPathClear(pos *chess.Position, from, to chess.Square) bool {
	df := sign(to.File() - from.File())
	dr := sign(to.Rank() - from.Rank())

	for sq := from.Offset(df, dr); sq != to; sq = sq.Offset(df, dr) {
		if !pos.At(sq).IsEmpty() {
			return false
		}
	}
	return true
}

// between returns the squares strictly between from and to when they share
// a line, and nil otherwise.
func between(from, to chess.Square) []chess.Square {
	if !isDiagonal(from, to) && !isStraight(from, to) {
		return nil
	}
	df := sign(to.File() - from.File())
	dr := sign(to.Rank() - from.Rank())

	var squares []chess.Square
	for sq := from.Offset(df, dr); sq != to; sq = sq.Offset(df, dr) {
		squares = append(squares, sq)
	}
	return squares
}

func bishopReach(pos *chess.Position, from, to chess.Square) (chess.MoveKind, bool) {
	return chess.Normal, isDiagonal(from, to) && isPathClear(pos, from, to)
}

func rookReach(pos *chess.Position, from, to chess.Square) (chess.MoveKind, bool) {
	return chess.Normal, isStraight(from, to) && isPathClear(pos, from, to)
}

func queenReach(pos *chess.Position, from, to chess.Square) (chess.MoveKind, bool) {
	if !isDiagonal(from, to) && !isStraight(from, to) {
		return chess.Normal, false
	}
	return chess.Normal, isPathClear(pos, from, to)
}

func knightReach(_ *chess.Position, from, to chess.Square) (chess.MoveKind, bool) {
	df := abs(to.File() - from.File())
	dr := abs(to.Rank() - from.Rank())
	return chess.Normal, (df == 1 && dr == 2) || (df == 2 && dr == 1)
}
