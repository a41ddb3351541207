package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chesserr "github.com/lgbarn/chesslab-go/internal/errors"
	"github.com/lgbarn/chesslab-go/internal/testutil"
)

const metadata = `Casual game
London
2024.05.01
Round 1
White: Anna
Black: Boris


Result: 1-0
Annotated by Anna
`

func TestReadRecord(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "numbered moves",
			body: "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6\n",
			want: []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"},
		},
		{
			name: "castling and captures",
			body: "1.e4 e5 2.Nf3 Nf6 3.Bc4 Bc5 4.O-O O-O 5.Nxe5 Nxe4\n",
			want: []string{"e4", "e5", "Nf3", "Nf6", "Bc4", "Bc5", "O-O", "O-O", "Nxe5", "Nxe4"},
		},
		{
			name: "annotations are skipped",
			body: "1. d4! d5?\n2. c4 {queen's gambit} dxc4 3. Qa4+ O-O-O\n",
			want: []string{"d4", "d5", "c4", "dxc4", "Qa4", "O-O-O"},
		},
		{
			name: "moves spread over lines",
			body: "e4\ne5\n\nNf3\n",
			want: []string{"e4", "e5", "Nf3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ReadRecord(strings.NewReader(metadata + tt.body))
			if err != nil {
				t.Fatalf("ReadRecord() error: %v", err)
			}
			testutil.AssertEqual(t, rec.Tokens, tt.want)
			testutil.AssertEqual(t, len(rec.Metadata), 10)
			testutil.AssertEqual(t, rec.Metadata[4], "White: Anna")
			testutil.AssertEqual(t, rec.Title(), "Casual game")
		})
	}
}

func TestReadRecord_MetadataKeepsMoveLikeText(t *testing.T) {
	// Metadata is never scanned for tokens, even when it looks like moves.
	header := strings.Repeat("e4 Nf3\n", 10)
	rec, err := ReadRecord(strings.NewReader(header + "d4\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Tokens, []string{"d4"})
}

func TestReadRecord_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"empty", "", 1},
		{"short metadata", "one\ntwo\nthree\n", 4},
		{"no moves", metadata, 11},
		{"no tokens in body", metadata + "1. ... 2. ...\n", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRecord(strings.NewReader(tt.input))
			if !errors.Is(err, chesserr.ErrMalformedRecord) {
				t.Fatalf("ReadRecord() error = %v; want ErrMalformedRecord", err)
			}
			var perr *chesserr.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ReadRecord() error %T is not a ParseError", err)
			}
			testutil.AssertEqual(t, perr.Line, tt.wantLine)
		})
	}
}

func TestReadRecordFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "game.txt")
	if err := os.WriteFile(good, []byte(metadata+"1. e4 e5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rec, err := ReadRecordFile(good)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.File, good)
	testutil.AssertEqual(t, rec.PlyCount(), 2)

	bad := filepath.Join(dir, "short.txt")
	if err := os.WriteFile(bad, []byte("only one line\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ReadRecordFile(bad)
	testutil.AssertContains(t, err.Error(), "short.txt:2")

	_, err = ReadRecordFile(filepath.Join(dir, "missing.txt"))
	testutil.AssertError(t, err)
}
