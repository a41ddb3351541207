// Package processing replays game records and summarises them.
package processing

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
	"github.com/lgbarn/chesslab-go/internal/game"
	"github.com/lgbarn/chesslab-go/internal/search"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Plies     int
	Captures  int
	Checks    int // moves giving check, mate included
	Castles   int
	EnPassant int

	FinalStatus chess.CheckStatus // of the side to move after the last ply
	FinalFEN    string
	FinalScore  float64 // static evaluation, White-positive pawns
}

// String returns a one-line summary such as
// "7 plies, 1 capture, 1 check, checkmate".
func (ga *GameAnalysis) String() string {
	parts := []string{
		plural(ga.Plies, "ply", "plies"),
		plural(ga.Captures, "capture", "captures"),
		plural(ga.Checks, "check", "checks"),
	}
	if ga.Castles > 0 {
		parts = append(parts, plural(ga.Castles, "castle", "castles"))
	}
	if ga.FinalStatus == chess.Checkmate || ga.FinalStatus == chess.Stalemate {
		parts = append(parts, ga.FinalStatus.String())
	}
	return strings.Join(parts, ", ")
}

// ValidationResult holds the result of record validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
	Err      error
	Analysis *GameAnalysis // nil unless Valid
}

// AnalyzeRecord replays a record from the initial position and counts
// what happened. A replay failure is returned as *errors.GameError naming
// the record's file.
func AnalyzeRecord(rec *chess.Record) (*GameAnalysis, error) {
	g := game.New()
	analysis := &GameAnalysis{}

	for _, tok := range rec.Tokens {
		m, err := g.ApplyNotation(tok)
		if err != nil {
			if ge, ok := err.(*errors.GameError); ok {
				ge.File = rec.File
			}
			return nil, err
		}

		analysis.Plies++
		if m.IsCapture() {
			analysis.Captures++
		}
		if m.IsCastle() {
			analysis.Castles++
		}
		if m.Kind == chess.EnPassant {
			analysis.EnPassant++
		}
		if status := g.Status(); status == chess.Check || status == chess.Checkmate {
			analysis.Checks++
		}
	}

	analysis.FinalStatus = g.Status()
	analysis.FinalFEN = g.FEN()
	analysis.FinalScore = search.Evaluate(g.Position())
	return analysis, nil
}

// ValidateRecord verifies that every move of a record is legal.
func ValidateRecord(rec *chess.Record) *ValidationResult {
	analysis, err := AnalyzeRecord(rec)
	if err == nil {
		return &ValidationResult{Valid: true, Analysis: analysis}
	}

	result := &ValidationResult{Err: err, ErrorMsg: err.Error()}
	if ge, ok := err.(*errors.GameError); ok {
		result.ErrorPly = ge.PlyNum
		result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", ge.PlyNum, ge.MoveText)
	}
	return result
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
