package engine

import "github.com/lgbarn/chesslab-go/internal/chess"

// IsCheckmate returns true if the given colour is in check and cannot get
// out of it. Against a single checker it looks for a legal capture of the
// checker, including an en-passant capture of a checking pawn, and for a
// legal interposition. Every candidate is verified with Legal, so pinned
// defenders do not count. In all cases the king's own escapes are tried.
func IsCheckmate(pos *chess.Position, colour chess.Colour) bool {
	check := Checkers(pos, colour)
	if !check.Found() {
		return false
	}
	king := pos.King(colour)

	if !check.Double() {
		defenders := ByColour(colour)
		if len(Candidates(pos, check.From, defenders)) > 0 {
			return false
		}
		if canCaptureEnPassant(pos, colour, check.From) {
			return false
		}
		for _, sq := range between(check.From, king) {
			if len(Candidates(pos, sq, defenders)) > 0 {
				return false
			}
		}
	}

	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			to := king.Offset(df, dr)
			if to == chess.NoSquare || to == king {
				continue
			}
			if _, ok := Legal(pos, king, to); ok {
				return false
			}
		}
	}
	return true
}

// canCaptureEnPassant reports whether a pawn of the given colour can take
// the pawn on victim en passant.
func canCaptureEnPassant(pos *chess.Position, colour chess.Colour, victim chess.Square) bool {
	if !pos.At(victim).Is(colour.Opposite(), chess.Pawn) {
		return false
	}
	target, ok := pos.EnPassantTarget()
	if !ok || target.File() != victim.File() {
		return false
	}
	for _, df := range []int{-1, 1} {
		from := victim.Offset(df, 0)
		if from == chess.NoSquare || !pos.At(from).Is(colour, chess.Pawn) {
			continue
		}
		if kind, ok := Legal(pos, from, target); ok && kind == chess.EnPassant {
			return true
		}
	}
	return false
}

// IsStalemate returns true if the given colour is not in check and has no
// legal move.
func IsStalemate(pos *chess.Position, colour chess.Colour) bool {
	return !InCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

// Status classifies the position for the given colour.
func Status(pos *chess.Position, colour chess.Colour) chess.CheckStatus {
	switch {
	case IsCheckmate(pos, colour):
		return chess.Checkmate
	case InCheck(pos, colour):
		return chess.Check
	case IsStalemate(pos, colour):
		return chess.Stalemate
	}
	return chess.NoCheck
}
