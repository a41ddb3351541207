// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Sign returns +1 for White and -1 for Black. Scores are White-positive.
func (c Colour) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

// Piece represents a chess piece type. The zero value is Empty.
type Piece int

const (
	Empty Piece = iota // No piece on the square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
// Pawns have no letter in move notation but use 'P' in diagrams.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts an uppercase notation letter to a piece type.
// It returns Empty for anything that is not a piece letter.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	default:
		return Empty
	}
}

// MoveKind tags what a legal move does beyond relocating one piece.
type MoveKind int

const (
	Normal      MoveKind = iota
	DoubleStep           // Pawn two-step, creates an en-passant target
	EnPassant            // Pawn capture onto the en-passant target
	ShortCastle          // King to the g-file, rook hop h -> f
	LongCastle           // King to the c-file, rook hop a -> d
	Removal              // Linked move only: clears the occupant at From
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case DoubleStep:
		return "DoubleStep"
	case EnPassant:
		return "EnPassant"
	case ShortCastle:
		return "ShortCastle"
	case LongCastle:
		return "LongCastle"
	case Removal:
		return "Removal"
	default:
		return "Unknown"
	}
}

// IsCastle returns true for either castling kind.
func (k MoveKind) IsCastle() bool {
	return k == ShortCastle || k == LongCastle
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)

// Square is a board index: rank*8 + file, a1 = 0, h8 = 63.
type Square int

// NoSquare marks an absent square.
const NoSquare Square = -1

// NewSquare builds a square from a file and rank, both 0-7.
// It returns NoSquare when either coordinate is off the board.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// File returns the file 0-7 (a-h).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the rank 0-7 (1-8).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square shifted by df files and dr ranks, or NoSquare.
func (s Square) Offset(df, dr int) Square {
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("square %q: want two characters", text)
	}
	file := int(text[0]) - ColBase
	rank := int(text[1]) - RankBase
	sq := NewSquare(file, rank)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("square %q: off the board", text)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on a bad name.
// It is intended for constants and tests.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// PawnDirection returns +1 for White, -1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the starting rank index of the given colour's pawns.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// RelativeRank returns the rank counted from the given colour's own side.
func RelativeRank(colour Colour, rank int) int {
	if colour == White {
		return rank
	}
	return BoardSize - 1 - rank
}

// Occupant is the content of one square. Piece == Empty is the absence
// variant; Colour and Moves are meaningless for it.
type Occupant struct {
	Piece  Piece
	Colour Colour
	// Moves counts how often this piece has been the source of an applied
	// move. Zero means the piece never moved.
	Moves int
}

// EmptySquare is the empty occupant.
var EmptySquare = Occupant{}

// NewPiece creates an unmoved piece occupant.
func NewPiece(colour Colour, piece Piece) Occupant {
	return Occupant{Piece: piece, Colour: colour}
}

// W creates an unmoved white piece.
func W(piece Piece) Occupant {
	return NewPiece(White, piece)
}

// B creates an unmoved black piece.
func B(piece Piece) Occupant {
	return NewPiece(Black, piece)
}

// IsEmpty reports whether the occupant is the absence variant.
func (o Occupant) IsEmpty() bool {
	return o.Piece == Empty
}

// Is reports whether the occupant is a piece of the given colour and type.
func (o Occupant) Is(colour Colour, piece Piece) bool {
	return o.Piece == piece && o.Colour == colour
}

// IsColour reports whether the occupant is a piece of the given colour.
func (o Occupant) IsColour(colour Colour) bool {
	return o.Piece != Empty && o.Colour == colour
}

// Letter returns the diagram letter: uppercase White, lowercase Black,
// '.' for empty squares.
func (o Occupant) Letter() byte {
	if o.IsEmpty() {
		return '.'
	}
	letter := o.Piece.Letter()
	if o.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a short description such as "White Knight".
func (o Occupant) String() string {
	if o.IsEmpty() {
		return "Empty"
	}
	return o.Colour.String() + " " + o.Piece.String()
}

// CheckStatus indicates whether a side is in check or checkmated.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a check status.
func (s CheckStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return ""
	}
}
