package engine

import (
	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// Resolve finds the single legal move of the given colour described by a
// decoded notation token. It fails with ErrUnresolvedNotation when no piece
// can play the token and with ErrAmbiguousNotation when several can.
func Resolve(pos *chess.Position, n chess.Notation, colour chess.Colour) (chess.Move, error) {
	if n.Castle.IsCastle() {
		return resolveCastle(pos, n, colour)
	}

	piece := n.Piece
	if piece == chess.Empty {
		piece = chess.Pawn
	}
	filter := Filter{Colour: colour, Piece: piece, File: n.FromFile, Rank: n.FromRank}

	froms := Candidates(pos, n.To, filter)
	switch len(froms) {
	case 0:
		return chess.Move{}, errors.Wrapf(errors.ErrUnresolvedNotation, "%s", n.Text)
	case 1:
	default:
		return chess.Move{}, errors.Wrapf(errors.ErrAmbiguousNotation, "%s: %d candidates", n.Text, len(froms))
	}

	from := froms[0]
	kind, _ := Legal(pos, from, n.To)
	m := NewMove(pos, from, n.To, kind)
	m.Text = MoveText(pos, m)
	return m, nil
}

func resolveCastle(pos *chess.Position, n chess.Notation, colour chess.Colour) (chess.Move, error) {
	side := sideFor(n.Castle)
	rank := chess.HomeRank(colour)
	from := pos.King(colour)
	to := chess.NewSquare(side.kingTo, rank)

	kind, ok := Legal(pos, from, to)
	if !ok || kind != n.Castle {
		return chess.Move{}, errors.Wrapf(errors.ErrUnresolvedNotation, "%s", n.Text)
	}

	m := NewMove(pos, from, to, kind)
	m.Text = MoveText(pos, m)
	return m, nil
}
