package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/engine"
	"github.com/lgbarn/chesslab-go/internal/errors"
	"github.com/lgbarn/chesslab-go/internal/parser"
	"github.com/lgbarn/chesslab-go/internal/search"
)

// Game is one playing session. It owns its position and history and must
// be used from a single goroutine.
type Game struct {
	pos      *chess.Position
	history  *History
	metadata []string
}

// New creates a game at the standard starting position.
func New() *Game {
	return &Game{
		pos:     chess.NewInitialPosition(),
		history: NewHistory(),
	}
}

// NewFromFEN creates a game starting from a FEN position.
func NewFromFEN(fen string) (*Game, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{pos: pos, history: NewHistory()}, nil
}

// Apply plays the piece on from to to for the side to move. An illegal
// move returns an error wrapping ErrIllegalMove and changes nothing.
func (g *Game) Apply(from, to chess.Square) (chess.MoveKind, error) {
	if !from.Valid() || !to.Valid() {
		return chess.Normal, fmt.Errorf("%s-%s: %w", from, to, errors.ErrInvalidSquare)
	}

	side := g.pos.SideToMove()
	if !g.pos.At(from).IsColour(side) {
		return chess.Normal, fmt.Errorf("%s-%s: no %s piece on %s: %w", from, to, side, from, errors.ErrIllegalMove)
	}

	kind, ok := engine.Legal(g.pos, from, to)
	if !ok {
		return chess.Normal, fmt.Errorf("%s-%s: %w", from, to, errors.ErrIllegalMove)
	}

	m := engine.NewMove(g.pos, from, to, kind)
	g.history.Commit(g.pos, from, to, kind, engine.MoveText(g.pos, m))
	return kind, nil
}

// ApplyCoordinates plays a move written as two square names, such as
// "e2e4" or "e2-e4".
func (g *Game) ApplyCoordinates(text string) (chess.MoveKind, error) {
	squares := strings.ReplaceAll(text, "-", "")
	if len(squares) != 4 {
		return chess.Normal, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, err := chess.ParseSquare(squares[:2])
	if err != nil {
		return chess.Normal, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrInvalidSquare)
	}
	to, err := chess.ParseSquare(squares[2:])
	if err != nil {
		return chess.Normal, fmt.Errorf("move %q: %v: %w", text, err, errors.ErrInvalidSquare)
	}
	return g.Apply(from, to)
}

// ApplyNotation decodes and resolves a notation token for the side to
// move and plays it. Failures are returned as *errors.GameError.
func (g *Game) ApplyNotation(token string) (chess.Move, error) {
	fail := func(err error) (chess.Move, error) {
		return chess.Move{}, &errors.GameError{
			Err:      err,
			PlyNum:   g.history.Cursor() + 2,
			MoveText: token,
		}
	}

	n, err := parser.DecodeToken(token)
	if err != nil {
		return fail(err)
	}
	m, err := engine.Resolve(g.pos, n, g.pos.SideToMove())
	if err != nil {
		return fail(err)
	}
	return g.history.Commit(g.pos, m.From, m.To, m.Kind, m.Text), nil
}

// Load replays tokens from the starting position and, on success,
// replaces the game with the result, rewound to its first position. On
// failure the game is left as it was.
func (g *Game) Load(tokens, metadata []string) error {
	loaded := New()
	for _, tok := range tokens {
		if _, err := loaded.ApplyNotation(tok); err != nil {
			return err
		}
	}
	loaded.Rewind()
	loaded.metadata = append([]string(nil), metadata...)

	*g = *loaded
	return nil
}

// LoadRecord loads a game read by parser.ReadRecord.
func (g *Game) LoadRecord(rec *chess.Record) error {
	err := g.Load(rec.Tokens, rec.Metadata)
	if ge, ok := err.(*errors.GameError); ok {
		ge.File = rec.File
	}
	return err
}

// Undo steps back one move. It returns false at the first position.
func (g *Game) Undo() bool {
	return g.history.Undo(g.pos)
}

// Redo steps forward one move. It returns false at the last position.
func (g *Game) Redo() bool {
	return g.history.Redo(g.pos)
}

// Rewind steps back to the first position.
func (g *Game) Rewind() {
	g.history.Rewind(g.pos)
}

// FastForward steps forward to the last recorded move.
func (g *Game) FastForward() {
	g.history.FastForward(g.pos)
}

// Seek steps to the position after the given 0-based move index; -1 is
// the first position. Out-of-range values are clamped.
func (g *Game) Seek(index int) {
	g.history.Seek(g.pos, index)
}

// IsCheck reports whether colour's king is attacked.
func (g *Game) IsCheck(colour chess.Colour) bool {
	return engine.InCheck(g.pos, colour)
}

// IsCheckmate reports whether colour is checkmated.
func (g *Game) IsCheckmate(colour chess.Colour) bool {
	return engine.IsCheckmate(g.pos, colour)
}

// IsStalemate reports whether colour has no legal move while not in check.
func (g *Game) IsStalemate(colour chess.Colour) bool {
	return engine.IsStalemate(g.pos, colour)
}

// Status returns the check status of the side to move.
func (g *Game) Status() chess.CheckStatus {
	return engine.Status(g.pos, g.pos.SideToMove())
}

// BestMove searches depth plies below the current position for colour.
// The history is not touched.
func (g *Game) BestMove(colour chess.Colour, depth int, opts ...search.Option) (chess.Move, bool) {
	return search.BestMove(g.pos, colour, depth, opts...)
}

// Rank scores every legal move for colour, best first.
func (g *Game) Rank(colour chess.Colour, depth int, opts ...search.Option) []chess.Move {
	return search.Rank(g.pos, colour, depth, opts...)
}

// OccupantAt returns the occupant of a square.
func (g *Game) OccupantAt(sq chess.Square) chess.Occupant {
	return g.pos.At(sq)
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.pos.SideToMove()
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return engine.ToFEN(g.pos)
}

// Metadata returns the metadata lines of the loaded record.
func (g *Game) Metadata() []string {
	return append([]string(nil), g.metadata...)
}

// SetMetadata replaces the metadata lines.
func (g *Game) SetMetadata(lines []string) {
	g.metadata = append([]string(nil), lines...)
}

// Moves returns the recorded moves, applied or not.
func (g *Game) Moves() []chess.Move {
	return g.history.Moves()
}

// MoveTexts returns the display text of every recorded move.
func (g *Game) MoveTexts() []string {
	return g.history.Texts()
}

// Cursor returns the index of the last applied move, -1 at the start.
func (g *Game) Cursor() int {
	return g.history.Cursor()
}

// StartPly returns the ply of the position before the first recorded move.
func (g *Game) StartPly() int {
	return g.pos.Ply - (g.history.Cursor() + 1)
}

// Len returns the number of recorded moves.
func (g *Game) Len() int {
	return g.history.Len()
}
