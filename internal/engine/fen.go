// Package engine implements the chess rules on top of chess.Position:
// per-piece reachability, check detection, legal move enumeration, move
// application and rollback, notation resolution and FEN conversion.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string.
//
// Positions track move counts rather than castling rights, so rights are
// mapped onto counts: a king or rook that has lost its right is marked as
// having moved once. The fullmove number and side to move set the ply.
// The halfmove clock is accepted and ignored.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(pos, parts[0]); err != nil {
		return nil, err
	}

	black, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	fullmove, err := parseFullmove(parts)
	if err != nil {
		return nil, err
	}
	pos.Ply = 2 * (fullmove - 1)
	if black {
		pos.Ply++
	}

	if err := parseCastlingRights(pos, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}

	return pos, nil
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
func MustPositionFromFEN(fen string) *chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	rank := chess.BoardSize - 1
	file := 0
	kings := map[chess.Colour]int{}

	for _, c := range placement {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece := chess.PieceFromLetter(byte(unicode.ToUpper(c)))
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.NewSquare(file, rank)
			if sq == chess.NoSquare {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if piece == chess.King {
				kings[colour]++
			}

			pos.Put(sq, chess.NewPiece(colour, piece))
			file++
		}
	}

	if rank != 0 || file != chess.BoardSize {
		return fmt.Errorf("placement does not cover the board: %w", errors.ErrInvalidFEN)
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("need exactly one king per side: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove reports whether Black is to move.
func parseSideToMove(parts []string) (bool, error) {
	if len(parts) < 2 {
		return false, nil
	}
	switch parts[1] {
	case "w":
		return false, nil
	case "b":
		return true, nil
	default:
		return false, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseFullmove parses the fullmove number, defaulting to 1.
func parseFullmove(parts []string) (int, error) {
	if len(parts) < 6 {
		return 1, nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
	}
	return n, nil
}

// parseCastlingRights marks kings and rooks that may no longer castle.
func parseCastlingRights(pos *chess.Position, parts []string) error {
	rights := "-"
	if len(parts) >= 3 {
		rights = parts[2]
	}

	short := map[chess.Colour]bool{}
	long := map[chess.Colour]bool{}
	if rights != "-" {
		for _, c := range rights {
			switch c {
			case 'K':
				short[chess.White] = true
			case 'Q':
				long[chess.White] = true
			case 'k':
				short[chess.Black] = true
			case 'q':
				long[chess.Black] = true
			default:
				return fmt.Errorf("invalid castling rights: %s: %w", rights, errors.ErrInvalidFEN)
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rank := chess.HomeRank(colour)
		home := chess.NewSquare(kingFile, rank)
		if pos.King(colour) != home || (!short[colour] && !long[colour]) {
			markMoved(pos, pos.King(colour))
		}
		if !short[colour] {
			markMoved(pos, chess.NewSquare(shortRookFile, rank))
		}
		if !long[colour] {
			markMoved(pos, chess.NewSquare(longRookFile, rank))
		}
	}
	return nil
}

// markMoved records one move on the occupant of sq, if any.
func markMoved(pos *chess.Position, sq chess.Square) {
	if o := pos.At(sq); !o.IsEmpty() && o.Moves == 0 {
		o.Moves = 1
		pos.Put(sq, o)
	}
}

// parseEnPassant parses the en passant target square field. The target is
// recorded as created on the previous ply so that it is live now.
func parseEnPassant(pos *chess.Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	pos.EnPassant = chess.EnPassantState{Square: sq, Ply: pos.Ply - 1, Set: true}
	return nil
}

// ToFEN converts a position to a FEN string. The halfmove clock is not
// tracked and is always written as 0.
func ToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "0 %d", pos.Ply/2+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			o := pos.At(chess.NewSquare(file, rank))
			if o.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(o.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.SideToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range castleSides {
			if !canStillCastle(pos, colour, side) {
				continue
			}
			letter := byte('K')
			if side.kind == chess.LongCastle {
				letter = 'Q'
			}
			if colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// canStillCastle reports whether the king and rook of one castling side
// are both unmoved on their home squares.
func canStillCastle(pos *chess.Position, colour chess.Colour, side castleSide) bool {
	rank := chess.HomeRank(colour)
	king := pos.At(chess.NewSquare(kingFile, rank))
	rook := pos.At(chess.NewSquare(side.rookFrom, rank))
	return king.Is(colour, chess.King) && king.Moves == 0 &&
		rook.Is(colour, chess.Rook) && rook.Moves == 0
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if sq, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}
