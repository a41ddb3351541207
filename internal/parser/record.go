package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/errors"
)

// tokenPattern finds move tokens in the body of a record: a run of letters
// ending in a digit, or a castling token.
var tokenPattern = regexp.MustCompile(`[A-Za-z]+[0-9]|(?:O-)+O`)

// ReadRecord reads a game record: chess.MetadataLines free-form lines
// followed by move text. Move numbers, punctuation and annotations in the
// move text are skipped.
func ReadRecord(r io.Reader) (*chess.Record, error) {
	scanner := bufio.NewScanner(r)
	rec := &chess.Record{}

	for len(rec.Metadata) < chess.MetadataLines && scanner.Scan() {
		rec.Metadata = append(rec.Metadata, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading metadata")
	}
	if len(rec.Metadata) < chess.MetadataLines {
		return nil, &errors.ParseError{
			Err:      errors.ErrMalformedRecord,
			Line:     len(rec.Metadata) + 1,
			Expected: fmt.Sprintf("%d metadata lines", chess.MetadataLines),
			Got:      "end of input",
		}
	}

	var body strings.Builder
	for scanner.Scan() {
		body.WriteString(scanner.Text())
		body.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading moves")
	}

	rec.Tokens = tokenPattern.FindAllString(body.String(), -1)
	if len(rec.Tokens) == 0 {
		return nil, &errors.ParseError{
			Err:      errors.ErrMalformedRecord,
			Line:     chess.MetadataLines + 1,
			Expected: "move tokens",
			Got:      "none",
		}
	}
	return rec, nil
}

// ReadRecordFile reads a game record from the named file.
func ReadRecordFile(path string) (*chess.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := ReadRecord(f)
	if err != nil {
		if perr, ok := err.(*errors.ParseError); ok {
			perr.File = path
		}
		return nil, err
	}
	rec.File = path
	return rec, nil
}
