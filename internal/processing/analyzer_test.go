package processing

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chesslab-go/internal/chess"
	chesserr "github.com/lgbarn/chesslab-go/internal/errors"
	"github.com/lgbarn/chesslab-go/internal/testutil"
)

func record(moves string) *chess.Record {
	return &chess.Record{
		Metadata: make([]string, chess.MetadataLines),
		Tokens:   strings.Fields(moves),
		File:     "test.txt",
	}
}

func TestAnalyzeRecord(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		want  GameAnalysis
	}{
		{
			name:  "scholar's mate",
			moves: "e4 e5 Bc4 Nc6 Qh5 Nf6 Qxf7",
			want: GameAnalysis{
				Plies: 7, Captures: 1, Checks: 1,
				FinalStatus: chess.Checkmate,
				FinalFEN:    "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4",
			},
		},
		{
			name:  "en passant and castling",
			moves: "e4 a6 e5 d5 exd6 Nf6 Nf3 g6 Bc4 Bg7 O-O O-O",
			want: GameAnalysis{
				Plies: 12, Captures: 1, Castles: 2, EnPassant: 1,
				FinalFEN: "rnbq1rk1/1pp1ppbp/p2P1np1/8/2B5/5N2/PPPP1PPP/RNBQ1RK1 w - - 0 7",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnalyzeRecord(record(tt.moves))
			if err != nil {
				t.Fatalf("AnalyzeRecord() error: %v", err)
			}
			got.FinalScore = 0
			testutil.AssertEqual(t, *got, tt.want)
		})
	}
}

func TestAnalyzeRecord_FinalScore(t *testing.T) {
	got, err := AnalyzeRecord(record("e4 d5 exd5"))
	if err != nil {
		t.Fatalf("AnalyzeRecord() error: %v", err)
	}
	testutil.AssertTrue(t, got.FinalScore > 0, "white a pawn up scores %v", got.FinalScore)
}

func TestAnalyzeRecord_Error(t *testing.T) {
	_, err := AnalyzeRecord(record("e4 e5 Ke3"))

	var ge *chesserr.GameError
	if !stderrors.As(err, &ge) {
		t.Fatalf("AnalyzeRecord() error = %v; want *GameError", err)
	}
	testutil.AssertEqual(t, ge.File, "test.txt")
	testutil.AssertEqual(t, ge.PlyNum, 3)
	testutil.AssertEqual(t, ge.MoveText, "Ke3")
}

func TestValidateRecord(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v := ValidateRecord(record("d4 d5 c4"))
		testutil.AssertTrue(t, v.Valid, "Valid")
		testutil.AssertNotNil(t, v.Analysis)
		testutil.AssertEqual(t, v.Analysis.Plies, 3)
	})

	t.Run("illegal move", func(t *testing.T) {
		v := ValidateRecord(record("d4 d5 Qd4"))
		testutil.AssertFalse(t, v.Valid, "Valid")
		testutil.AssertEqual(t, v.ErrorPly, 3)
		testutil.AssertEqual(t, v.ErrorMsg, "illegal move at ply 3: Qd4")
		testutil.AssertTrue(t, stderrors.Is(v.Err, chesserr.ErrUnresolvedNotation), "unresolved notation")
	})
}

func TestGameAnalysis_String(t *testing.T) {
	tests := []struct {
		analysis GameAnalysis
		want     string
	}{
		{GameAnalysis{}, "0 plies, 0 captures, 0 checks"},
		{GameAnalysis{Plies: 7, Captures: 1, Checks: 1, FinalStatus: chess.Checkmate}, "7 plies, 1 capture, 1 check, checkmate"},
		{GameAnalysis{Plies: 1, Captures: 2, Checks: 3, Castles: 1}, "1 ply, 2 captures, 3 checks, 1 castle"},
		{GameAnalysis{Plies: 9, FinalStatus: chess.Stalemate}, "9 plies, 0 captures, 0 checks, stalemate"},
		{GameAnalysis{Plies: 9, FinalStatus: chess.Check}, "9 plies, 0 captures, 0 checks"},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.analysis.String(), tt.want)
	}
}
