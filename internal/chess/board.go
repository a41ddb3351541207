package chess

// EnPassantState records the square skipped by the last double-stepped
// pawn and the ply at which that happened.
type EnPassantState struct {
	Square Square
	Ply    int
	Set    bool
}

// Position represents a chess board with all state needed for the game.
// It is a plain value: assignment copies it and == compares it.
type Position struct {
	// The board squares indexed by Square (a1 = 0, h8 = 63).
	Squares [NumSquares]Occupant

	// Keep track of where the two kings are for check detection.
	WKing Square
	BKing Square

	// Whether each side has castled at some point. Only the evaluator reads these.
	WhiteCastled bool
	BlackCastled bool

	// En-passant target left by the most recent double step, if any.
	EnPassant EnPassantState

	// Number of half-moves applied since the initial position.
	// White moves on even plies.
	Ply int
}

// NewPosition creates a new empty position.
func NewPosition() *Position {
	return &Position{
		WKing: NoSquare,
		BKing: NoSquare,
	}
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *Position {
	p := NewPosition()
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition sets up the standard chess starting position.
func (p *Position) SetupInitialPosition() {
	*p = Position{}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		p.Squares[NewSquare(file, 0)] = W(backRank[file])
		p.Squares[NewSquare(file, 1)] = W(Pawn)
		p.Squares[NewSquare(file, 6)] = B(Pawn)
		p.Squares[NewSquare(file, 7)] = B(backRank[file])
	}

	p.WKing = NewSquare(4, 0)
	p.BKing = NewSquare(4, 7)
}

// At returns the occupant of the given square. Off-board squares read as empty.
func (p *Position) At(sq Square) Occupant {
	if !sq.Valid() {
		return EmptySquare
	}
	return p.Squares[sq]
}

// Put places an occupant on a square, keeping the king squares current.
func (p *Position) Put(sq Square, o Occupant) {
	p.Squares[sq] = o
	if o.Piece == King {
		p.SetKing(o.Colour, sq)
	}
}

// Clear empties a square.
func (p *Position) Clear(sq Square) {
	p.Squares[sq] = EmptySquare
}

// King returns the square of the given colour's king.
func (p *Position) King(colour Colour) Square {
	if colour == White {
		return p.WKing
	}
	return p.BKing
}

// SetKing records the square of the given colour's king.
func (p *Position) SetKing(colour Colour, sq Square) {
	if colour == White {
		p.WKing = sq
	} else {
		p.BKing = sq
	}
}

// Castled reports whether the given colour has castled.
func (p *Position) Castled(colour Colour) bool {
	if colour == White {
		return p.WhiteCastled
	}
	return p.BlackCastled
}

// SetCastled records whether the given colour has castled.
func (p *Position) SetCastled(colour Colour, castled bool) {
	if colour == White {
		p.WhiteCastled = castled
	} else {
		p.BlackCastled = castled
	}
}

// SideToMove returns the colour whose turn it is, derived from the ply.
func (p *Position) SideToMove() Colour {
	if p.Ply%2 == 0 {
		return White
	}
	return Black
}

// EnPassantTarget returns the en-passant target square if it is still
// capturable on this ply.
func (p *Position) EnPassantTarget() (Square, bool) {
	ep := p.EnPassant
	if !ep.Set || p.Ply != ep.Ply+1 {
		return NoSquare, false
	}
	return ep.Square, true
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	return newPos
}

// Equal reports whether two positions are identical in every field.
func (p *Position) Equal(other *Position) bool {
	return *p == *other
}

// Mirror returns the position with colours swapped and ranks flipped.
// Move counts and castling flags travel with the pieces.
func (p *Position) Mirror() *Position {
	m := NewPosition()
	for sq := Square(0); sq < NumSquares; sq++ {
		o := p.Squares[sq]
		if o.IsEmpty() {
			continue
		}
		o.Colour = o.Colour.Opposite()
		m.Put(NewSquare(sq.File(), BoardSize-1-sq.Rank()), o)
	}
	m.WhiteCastled = p.BlackCastled
	m.BlackCastled = p.WhiteCastled
	if p.EnPassant.Set {
		s := p.EnPassant.Square
		m.EnPassant = EnPassantState{
			Square: NewSquare(s.File(), BoardSize-1-s.Rank()),
			Ply:    p.EnPassant.Ply,
			Set:    true,
		}
	}
	m.Ply = p.Ply
	return m
}

// PieceCount returns how many pieces of the given colour and type are on the board.
func (p *Position) PieceCount(colour Colour, piece Piece) int {
	n := 0
	for _, o := range p.Squares {
		if o.Is(colour, piece) {
			n++
		}
	}
	return n
}
