package engine

import (
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
)

// NewMove builds the move from -> to of the given kind against the current
// position. The move is not linked and carries no text.
func NewMove(pos *chess.Position, from, to chess.Square, kind chess.MoveKind) chess.Move {
	return chess.Move{
		From:          from,
		To:            to,
		Kind:          kind,
		Captured:      pos.At(to),
		PrevEnPassant: pos.EnPassant,
		Link:          chess.NoLink,
	}
}

// linkedMove returns the secondary move implied by a primary move, if any.
func linkedMove(pos *chess.Position, m chess.Move) (chess.Move, bool) {
	switch m.Kind {
	case chess.ShortCastle, chess.LongCastle:
		from, to := rookHop(pos.At(m.From).Colour, m.Kind)
		return NewMove(pos, from, to, chess.Normal), true
	case chess.EnPassant:
		victim := enPassantVictim(m.From, m.To)
		return NewMove(pos, victim, victim, chess.Removal), true
	}
	return chess.Move{}, false
}

// Forward applies m to the position. A castle or en-passant capture that is
// not yet linked gets its secondary move appended to links. The returned
// move carries the link index and must be passed to Backward.
func Forward(pos *chess.Position, links *Links, m chess.Move) chess.Move {
	if !m.HasLink() {
		if linked, ok := linkedMove(pos, m); ok {
			m.Link = links.Add(linked)
		}
	}

	mover := pos.At(m.From)
	relocate(pos, m.From, m.To)

	if m.HasLink() {
		applyLinked(pos, links.At(m.Link))
	}

	if m.Kind.IsCastle() {
		pos.SetCastled(mover.Colour, true)
	}

	if m.Kind == chess.DoubleStep {
		pos.EnPassant = chess.EnPassantState{
			Square: chess.NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2),
			Ply:    pos.Ply,
			Set:    true,
		}
	} else {
		pos.EnPassant = chess.EnPassantState{}
	}

	pos.Ply++
	return m
}

// Backward rolls back a move previously returned by Forward. Moves must be
// rolled back in reverse order of application.
func Backward(pos *chess.Position, links *Links, m chess.Move) {
	pos.Ply--
	pos.EnPassant = m.PrevEnPassant

	if m.HasLink() {
		revertLinked(pos, links.At(m.Link))
	}

	mover := pos.At(m.To)
	mover.Moves--
	pos.Put(m.From, mover)
	pos.Put(m.To, m.Captured)

	if m.Kind.IsCastle() {
		pos.SetCastled(mover.Colour, false)
	}
}

// relocate moves the occupant of from to to, counting the move.
func relocate(pos *chess.Position, from, to chess.Square) {
	mover := pos.At(from)
	mover.Moves++
	pos.Clear(from)
	pos.Put(to, mover)
}

func applyLinked(pos *chess.Position, m chess.Move) {
	if m.Kind == chess.Removal {
		pos.Clear(m.From)
		return
	}
	relocate(pos, m.From, m.To)
}

func revertLinked(pos *chess.Position, m chess.Move) {
	if m.Kind == chess.Removal {
		pos.Put(m.From, m.Captured)
		return
	}
	mover := pos.At(m.To)
	mover.Moves--
	pos.Put(m.From, mover)
	pos.Put(m.To, m.Captured)
}

// MoveText returns the display notation of m in the position before it is
// applied: "O-O", "Nf3", "exd5", "Rfe1", "Qh4e1". Pieces that share the
// destination with another legal mover of the same kind are disambiguated
// by file, then rank, then both.
func MoveText(pos *chess.Position, m chess.Move) string {
	switch m.Kind {
	case chess.ShortCastle:
		return "O-O"
	case chess.LongCastle:
		return "O-O-O"
	}

	mover := pos.At(m.From)
	capture := !pos.At(m.To).IsEmpty() || m.Kind == chess.EnPassant

	var sb strings.Builder
	if mover.Piece == chess.Pawn {
		if capture {
			sb.WriteByte(byte(chess.ColBase + m.From.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		return sb.String()
	}

	sb.WriteByte(mover.Piece.Letter())
	sb.WriteString(disambiguation(pos, m.From, m.To))
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// disambiguation returns the file, rank or square prefix needed to tell
// the mover apart from other pieces of its kind reaching the same square.
func disambiguation(pos *chess.Position, from, to chess.Square) string {
	mover := pos.At(from)
	rivals := Candidates(pos, to, Filter{Colour: mover.Colour, Piece: mover.Piece, File: -1, Rank: -1})

	sameFile, sameRank, others := false, false, false
	for _, sq := range rivals {
		if sq == from {
			continue
		}
		others = true
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}

	switch {
	case !others:
		return ""
	case !sameFile:
		return string(rune(chess.ColBase + from.File()))
	case !sameRank:
		return string(rune(chess.RankBase + from.Rank()))
	default:
		return from.String()
	}
}
