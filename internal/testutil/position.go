package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesslab-go/internal/chess"
)

// Place builds a position from a placement string such as
// "Ke1 Ra1 Rh1 ke8 pe7": one token per piece, the letter's case gives the
// colour and the square follows. Pieces are unmoved, White is to move.
func Place(t *testing.T, placement string) *chess.Position {
	t.Helper()
	pos := chess.NewPosition()
	for _, tok := range strings.Fields(placement) {
		if len(tok) != 3 {
			t.Fatalf("bad placement token %q", tok)
		}
		colour := chess.White
		letter := tok[0]
		if letter >= 'a' && letter <= 'z' {
			colour = chess.Black
			letter -= 'a' - 'A'
		}
		piece := chess.PieceFromLetter(letter)
		if piece == chess.Empty {
			t.Fatalf("bad piece letter in %q", tok)
		}
		sq, err := chess.ParseSquare(tok[1:])
		if err != nil {
			t.Fatalf("bad square in %q: %v", tok, err)
		}
		pos.Put(sq, chess.NewPiece(colour, piece))
	}
	return pos
}

// Squares parses a space-separated list of square names.
func Squares(t *testing.T, names string) []chess.Square {
	t.Helper()
	var squares []chess.Square
	for _, name := range strings.Fields(names) {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("bad square %q: %v", name, err)
		}
		squares = append(squares, sq)
	}
	return squares
}

// Diagram renders a position as eight rank lines from rank 8 down, using
// Occupant letters. It makes position mismatches readable in cmp diffs.
func Diagram(pos *chess.Position) []string {
	lines := make([]string, 0, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		var sb strings.Builder
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(pos.At(chess.NewSquare(file, rank)).Letter())
		}
		lines = append(lines, sb.String())
	}
	return lines
}
