package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesslab-go/internal/chess"
	chesserr "github.com/lgbarn/chesslab-go/internal/errors"
	"github.com/lgbarn/chesslab-go/internal/testutil"
)

func TestNewPositionFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				return p.Equal(chess.NewInitialPosition())
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				sq, ok := p.EnPassantTarget()
				return p.At(chess.MustSquare("e4")) == chess.W(chess.Pawn) &&
					p.At(chess.MustSquare("e2")).IsEmpty() &&
					p.SideToMove() == chess.Black &&
					p.Ply == 1 &&
					ok && sq == chess.MustSquare("e3")
			},
		},
		{
			name: "fullmove number sets the ply",
			fen:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			checkFn: func(p *chess.Position) bool {
				_, ok := p.EnPassantTarget()
				return p.Ply == 2 && p.SideToMove() == chess.White && ok
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.At(chess.MustSquare("e1")).Moves == 1 &&
					p.At(chess.MustSquare("e8")).Moves == 1
			},
		},
		{
			name: "king side only",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w K - 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.At(chess.MustSquare("e1")).Moves == 0 &&
					p.At(chess.MustSquare("h1")).Moves == 0 &&
					p.At(chess.MustSquare("a1")).Moves == 1
			},
		},
		{
			name:    "empty string",
			fen:     "",
			wantErr: true,
		},
		{
			name:    "bad piece letter",
			fen:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
			wantErr: true,
		},
		{
			name:    "short rank",
			fen:     "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			wantErr: true,
		},
		{
			name:    "missing king",
			fen:     "8/8/8/8/8/8/8/4K3 w - - 0 1",
			wantErr: true,
		},
		{
			name:    "bad side to move",
			fen:     "4k3/8/8/8/8/8/8/4K3 x - - 0 1",
			wantErr: true,
		},
		{
			name:    "bad en passant square",
			fen:     "4k3/8/8/8/8/8/8/4K3 w - e9 0 1",
			wantErr: true,
		},
		{
			name:    "bad fullmove",
			fen:     "4k3/8/8/8/8/8/8/4K3 w - - 0 zero",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewPositionFromFEN(tt.fen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPositionFromFEN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, chesserr.ErrInvalidFEN) {
					t.Errorf("NewPositionFromFEN() error = %v; want ErrInvalidFEN", err)
				}
				return
			}
			if tt.checkFn != nil && !tt.checkFn(pos) {
				t.Errorf("NewPositionFromFEN() position check failed: %s", ToFEN(pos))
			}
		})
	}
}

func TestToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 b - - 0 37",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos, err := NewPositionFromFEN(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ToFEN(pos), fen)
		})
	}
}

func TestToFEN_AfterMoves(t *testing.T) {
	pos := chess.NewInitialPosition()
	links := NewLinks()
	playMoves(t, pos, links, []string{"e2e4", "c7c5", "g1f3"})

	want := "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2"
	testutil.AssertEqual(t, ToFEN(pos), want)

	playMoves(t, pos, links, []string{"d7d6", "e1e2"})
	want = "rnbqkbnr/pp2pppp/3p4/2p5/4P3/5N2/PPPPKPPP/RNBQ1B1R b kq - 0 3"
	testutil.AssertEqual(t, ToFEN(pos), want)
}
