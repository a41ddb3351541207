// Package parser reads game-record files and decodes move tokens.
package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// isCol returns true if c is a valid file character.
func isCol(c byte) bool {
	return c >= chess.ColBase && c < chess.ColBase+chess.BoardSize
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.RankBase && c < chess.RankBase+chess.BoardSize
}

// isCapture returns true if c marks a capture.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isSeparator returns true if c separates source and destination in
// long-form tokens such as "e2-e4".
func isSeparator(c byte) bool {
	return c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// castleKind recognises "O-O" and "O-O-O" and their zero-digit spellings.
func castleKind(text string) (chess.MoveKind, bool) {
	parts := strings.Split(text, "-")
	for _, p := range parts {
		if len(p) != 1 || !isCastlingChar(p[0]) {
			return chess.Normal, false
		}
	}
	switch len(parts) {
	case 2:
		return chess.ShortCastle, true
	case 3:
		return chess.LongCastle, true
	}
	return chess.Normal, false
}

// DecodeToken splits a move token into its parts without looking at any
// position: the castling kind, the moving piece (Pawn when no letter
// leads), optional file and rank hints, a capture marker and the
// destination square. Trailing check markers are ignored.
func DecodeToken(text string) (chess.Notation, error) {
	n := chess.Notation{
		Text:     text,
		Castle:   chess.Normal,
		Piece:    chess.Pawn,
		FromFile: -1,
		FromRank: -1,
		To:       chess.NoSquare,
	}

	body := strings.TrimRightFunc(text, func(r rune) bool {
		return r < 128 && isCheck(byte(r))
	})

	if kind, ok := castleKind(body); ok {
		n.Castle = kind
		n.Piece = chess.King
		return n, nil
	}

	if len(body) < 2 {
		return n, malformed(text, "too short")
	}

	if piece := chess.PieceFromLetter(body[0]); piece != chess.Empty {
		n.Piece = piece
		body = body[1:]
		if len(body) < 2 {
			return n, malformed(text, "missing destination")
		}
	}

	dest := body[len(body)-2:]
	if !isCol(dest[0]) || !isRank(dest[1]) {
		return n, malformed(text, "bad destination")
	}
	n.To = chess.NewSquare(int(dest[0]-chess.ColBase), int(dest[1]-chess.RankBase))

	for i := 0; i < len(body)-2; i++ {
		c := body[i]
		switch {
		case isCol(c) && n.FromFile < 0:
			n.FromFile = int(c - chess.ColBase)
		case isRank(c) && n.FromRank < 0:
			n.FromRank = int(c - chess.RankBase)
		case isCapture(c) && !n.Capture:
			n.Capture = true
		case isSeparator(c):
		default:
			return n, malformed(text, fmt.Sprintf("unexpected %q", c))
		}
	}

	return n, nil
}

func malformed(text, reason string) error {
	return fmt.Errorf("token %q: %s: %w", text, reason, errors.ErrMalformedNotation)
}
