// Package hashing provides position hashing and a concurrent evaluation
// cache keyed by it.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesslab-go/internal/chess"
)

// Zobrist keys, indexed by colour, piece and square.
var (
	pieceKeys     [2][chess.NumPieceValues][chess.NumSquares]uint64
	enPassantKeys [chess.BoardSize]uint64
	castledKeys   [2]uint64
	sideKey       uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0xC4E55))

	for c := range pieceKeys {
		for p := range pieceKeys[c] {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = rnd.Uint64()
			}
		}
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rnd.Uint64()
	}
	for c := range castledKeys {
		castledKeys[c] = rnd.Uint64()
	}
	sideKey = rnd.Uint64()
}

// Zobrist returns the Zobrist hash of a position: its occupants, side to
// move, live en-passant file and castled flags. Move counts are not
// hashed, so equal hashes do not imply equal positions.
func Zobrist(pos *chess.Position) uint64 {
	var key uint64

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		o := pos.At(sq)
		if !o.IsEmpty() {
			key ^= pieceKeys[o.Colour][o.Piece][sq]
		}
	}

	if pos.SideToMove() == chess.Black {
		key ^= sideKey
	}

	if sq, ok := pos.EnPassantTarget(); ok {
		key ^= enPassantKeys[sq.File()]
	}

	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		if pos.Castled(colour) {
			key ^= castledKeys[colour]
		}
	}

	return key
}
