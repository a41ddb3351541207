package search

import (
	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/engine"
)

// Material values in centipawns, indexed by chess.Piece.
var pieceValue = [chess.NumPieceValues]int{
	chess.Pawn:   100,
	chess.Knight: 305,
	chess.Bishop: 333,
	chess.Rook:   563,
	chess.Queen:  950,
}

// Mobility weight per reachable destination, indexed by chess.Piece.
var mobilityWeight = [chess.NumPieceValues]int{
	chess.Knight: 9,
	chess.Bishop: 4,
	chess.Rook:   3,
	chess.Queen:  3,
}

// Pawn bonuses indexed by rank counted from the pawn's own side.
var (
	ordinaryPawnBonus = [chess.BoardSize]int{0, 0, 0, 0, 10, 20, 30, 0}
	passedPawnBonus   = [chess.BoardSize]int{0, 50, 50, 50, 70, 90, 110, 0}
)

const (
	supportBonus       = 12
	doubledPawnMalus   = 25
	bishopPairBonus    = 50
	uncastledKingMalus = 50
)

// Evaluate scores a position in pawns, White-positive. It is a pure
// function of the position and does not look at whose turn it is.
func Evaluate(pos *chess.Position) float64 {
	return float64(centipawns(pos)) / 100
}

func centipawns(pos *chess.Position) int {
	score := 0
	for file := 0; file < chess.BoardSize; file++ {
		var pawnsOnFile [2]int
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.NewSquare(file, rank)
			o := pos.At(sq)
			if o.IsEmpty() {
				continue
			}
			if o.Piece == chess.Pawn {
				pawnsOnFile[o.Colour]++
			}
			score += o.Colour.Sign() * pieceScore(pos, sq, o)
		}
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			if n := pawnsOnFile[colour]; n > 1 {
				score -= colour.Sign() * (n - 1) * doubledPawnMalus
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if pos.PieceCount(colour, chess.Bishop) == 2 {
			score += colour.Sign() * bishopPairBonus
		}
	}
	return score
}

// pieceScore returns the score of one piece from its owner's point of view.
func pieceScore(pos *chess.Position, sq chess.Square, o chess.Occupant) int {
	switch o.Piece {
	case chess.Pawn:
		return pieceValue[chess.Pawn] + pawnScore(pos, sq, o.Colour)
	case chess.King:
		if o.Moves != 0 && !pos.Castled(o.Colour) {
			return -uncastledKingMalus
		}
		return 0
	default:
		return pieceValue[o.Piece] + mobility(pos, sq)*mobilityWeight[o.Piece]
	}
}

func pawnScore(pos *chess.Position, sq chess.Square, colour chess.Colour) int {
	score := 0
	behind := -chess.PawnDirection(colour)
	for _, df := range []int{-1, 1} {
		if pos.At(sq.Offset(df, behind)).Is(colour, chess.Pawn) {
			score += supportBonus
		}
	}

	rank := chess.RelativeRank(colour, sq.Rank())
	if isPassed(pos, sq, colour) {
		return score + passedPawnBonus[rank]
	}
	return score + ordinaryPawnBonus[rank]
}

// isPassed reports whether no enemy pawn stands ahead of the pawn on its
// own or an adjacent file. Enemy pawns on the enemy's back rank are not
// looked at.
func isPassed(pos *chess.Position, sq chess.Square, colour chess.Colour) bool {
	enemy := colour.Opposite()
	dir := chess.PawnDirection(colour)
	last := chess.HomeRank(enemy)
	for rank := sq.Rank() + dir; rank != last && rank >= 0 && rank < chess.BoardSize; rank += dir {
		for df := -1; df <= 1; df++ {
			ahead := chess.NewSquare(sq.File()+df, rank)
			if pos.At(ahead).Is(enemy, chess.Pawn) {
				return false
			}
		}
	}
	return true
}

// mobility counts the destinations the piece on sq can reach.
func mobility(pos *chess.Position, sq chess.Square) int {
	n := 0
	for to := chess.Square(0); to < chess.NumSquares; to++ {
		if _, ok := engine.Reachable(pos, sq, to); ok {
			n++
		}
	}
	return n
}
