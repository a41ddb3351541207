package chess

// NoLink marks a move without a linked secondary move.
const NoLink = -1

// Move represents one reversible board change.
type Move struct {
	// Source and destination squares. A Removal has From == To.
	From Square
	To   Square

	// What the move does beyond relocating one piece.
	Kind MoveKind

	// The occupant previously at To, put back on rollback.
	Captured Occupant

	// The en-passant state before the move, put back on rollback.
	PrevEnPassant EnPassantState

	// Index of the linked move (castling rook hop, en-passant removal)
	// in the owning link table, or NoLink.
	Link int

	// Display notation, e.g. "Nf3" or "O-O". Empty for linked moves.
	Text string

	// Search evaluation of the position after this move, in pawns,
	// White-positive. Meaningless outside the search.
	Score float64
}

// HasLink reports whether the move carries a linked secondary move.
func (m Move) HasLink() bool {
	return m.Link != NoLink
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty() || m.Kind == EnPassant
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind.IsCastle()
}

// String returns the coordinate form of the move, e.g. "e2-e4".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// Notation is a decoded move token before it is resolved against a position.
type Notation struct {
	// The token as read.
	Text string

	// ShortCastle or LongCastle for castling tokens, Normal otherwise.
	Castle MoveKind

	// The moving piece type.
	Piece Piece

	// Disambiguation hints, -1 when absent.
	FromFile int
	FromRank int

	// Destination square. Unused for castling tokens.
	To Square

	// Whether the token carried a capture marker.
	Capture bool
}
