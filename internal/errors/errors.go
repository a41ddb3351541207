// Package errors defines the sentinel errors of chesslab and the error
// types that attach replay or file context to them. Both types unwrap, so
// callers match sentinels with errors.Is and extract context with errors.As.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a square name that is not on the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrMalformedNotation indicates a move token that cannot be decoded.
	ErrMalformedNotation = errors.New("malformed notation")

	// ErrUnresolvedNotation indicates a move token that no piece can play.
	ErrUnresolvedNotation = errors.New("unresolved notation")

	// ErrAmbiguousNotation indicates a move token that several pieces can play.
	ErrAmbiguousNotation = errors.New("ambiguous notation")

	// ErrMalformedRecord indicates a game-record file without the required
	// metadata lines or without any move tokens.
	ErrMalformedRecord = errors.New("malformed game record")

	ErrInvalidFEN    = errors.New("invalid FEN string")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError reports a move that failed while replaying a game.
type GameError struct {
	Err      error
	PlyNum   int    // 1-based, White's first move is ply 1; 0 if unknown
	MoveText string // token as written in the record
	File     string
}

// MoveLabel returns the move in numbered form, "3. Bc4" for White and
// "6... Rd1" for Black. It is empty when the ply or the text is unknown.
func (e *GameError) MoveLabel() string {
	if e.PlyNum <= 0 || e.MoveText == "" {
		return ""
	}
	number := (e.PlyNum + 1) / 2
	if e.PlyNum%2 == 1 {
		return fmt.Sprintf("%d. %s", number, e.MoveText)
	}
	return fmt.Sprintf("%d... %s", number, e.MoveText)
}

// Error renders as "file: ply 12 (6... Rd1): cause", omitting unknown parts.
func (e *GameError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(": ")
	}
	switch label := e.MoveLabel(); {
	case label != "":
		fmt.Fprintf(&sb, "ply %d (%s): ", e.PlyNum, label)
	case e.PlyNum > 0:
		fmt.Fprintf(&sb, "ply %d: ", e.PlyNum)
	case e.MoveText != "":
		fmt.Fprintf(&sb, "move %q: ", e.MoveText)
	}
	if e.Err == nil {
		sb.WriteString("replay failed")
	} else {
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed input (a game record, a FEN string or a
// config file) at a line.
type ParseError struct {
	Err      error
	File     string
	Line     int // 1-based; 0 if unknown
	Expected string
	Got      string
}

// Error renders as "file:line: expected X, got Y: cause".
func (e *ParseError) Error() string {
	var parts []string

	switch {
	case e.File != "" && e.Line > 0:
		parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
	case e.File != "":
		parts = append(parts, e.File)
	case e.Line > 0:
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "parse error"
	}
	return strings.Join(parts, ": ")
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap prefixes err with context. A nil err stays nil.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
