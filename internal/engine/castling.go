package engine

import "github.com/lgbarn/chesslab-go/internal/chess"

// King and rook files used by castling.
const (
	kingFile      = 4
	shortKingFile = 6
	longKingFile  = 2
	shortRookFile = 7
	longRookFile  = 0
	shortRookDest = 5
	longRookDest  = 3
)

// castleSide describes one castling option.
type castleSide struct {
	kind     chess.MoveKind
	kingTo   int   // king destination file
	rookFrom int   // rook start file
	rookTo   int   // rook destination file
	empty    []int // files that must be empty
	safe     []int // files the king must not be attacked on
}

var castleSides = []castleSide{
	{
		kind:     chess.ShortCastle,
		kingTo:   shortKingFile,
		rookFrom: shortRookFile,
		rookTo:   shortRookDest,
		empty:    []int{5, 6},
		safe:     []int{4, 5, 6},
	},
	{
		kind:     chess.LongCastle,
		kingTo:   longKingFile,
		rookFrom: longRookFile,
		rookTo:   longRookDest,
		empty:    []int{1, 2, 3},
		safe:     []int{4, 3, 2},
	},
}

// sideFor returns the castling option for the given kind.
func sideFor(kind chess.MoveKind) castleSide {
	if kind == chess.LongCastle {
		return castleSides[1]
	}
	return castleSides[0]
}

// kingReach handles one-step king moves, which must not walk into check,
// and castling.
func kingReach(pos *chess.Position, from, to chess.Square) (chess.MoveKind, bool) {
	if abs(to.File()-from.File()) <= 1 && abs(to.Rank()-from.Rank()) <= 1 {
		return chess.Normal, !LeavesKingInCheck(pos, from, to, chess.Normal)
	}
	return castleReach(pos, from, to)
}

// castleReach checks every castling condition for a king move from -> to.
func castleReach(pos *chess.Position, from, to chess.Square) (chess.MoveKind, bool) {
	king := pos.At(from)
	rank := chess.HomeRank(king.Colour)

	if king.Moves != 0 || from != chess.NewSquare(kingFile, rank) || to.Rank() != rank {
		return chess.Normal, false
	}

	for _, side := range castleSides {
		if to.File() != side.kingTo {
			continue
		}

		rook := pos.At(chess.NewSquare(side.rookFrom, rank))
		if !rook.Is(king.Colour, chess.Rook) || rook.Moves != 0 {
			return chess.Normal, false
		}

		for _, file := range side.empty {
			if !pos.At(chess.NewSquare(file, rank)).IsEmpty() {
				return chess.Normal, false
			}
		}

		enemy := ByColour(king.Colour.Opposite())
		for _, file := range side.safe {
			if IsAttacked(pos, chess.NewSquare(file, rank), enemy).Found() {
				return chess.Normal, false
			}
		}
		return side.kind, true
	}
	return chess.Normal, false
}

// rookHop returns the rook squares moved by a castle of the given colour.
func rookHop(colour chess.Colour, kind chess.MoveKind) (from, to chess.Square) {
	rank := chess.HomeRank(colour)
	side := sideFor(kind)
	return chess.NewSquare(side.rookFrom, rank), chess.NewSquare(side.rookTo, rank)
}

// kingAttacks reports whether a king on from attacks to.
func kingAttacks(from, to chess.Square) bool {
	return from != to && abs(to.File()-from.File()) <= 1 && abs(to.Rank()-from.Rank()) <= 1
}
