// Package output renders games as text diagrams and JSON documents.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/game"
)

// boardWidth is the width of a rendered rank line, e.g. "8 r n b q k b n r".
const boardWidth = 2 + 2*chess.BoardSize - 1

// metadataGap separates the board from the metadata beside it.
const metadataGap = "   "

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or a line break first
// when needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written on it.
func (o *OutputWriter) NewLine() {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	o.lineLength = 0
	o.needsSpace = false
}

// BoardLines renders the position as rank lines followed by a file
// legend, from White's side unless flipped.
func BoardLines(pos *chess.Position, flipped bool) []string {
	ranks := make([]int, 0, chess.BoardSize)
	files := make([]int, 0, chess.BoardSize)
	for i := 0; i < chess.BoardSize; i++ {
		if flipped {
			ranks = append(ranks, i)
			files = append(files, chess.BoardSize-1-i)
		} else {
			ranks = append(ranks, chess.BoardSize-1-i)
			files = append(files, i)
		}
	}

	lines := make([]string, 0, chess.BoardSize+1)
	for _, rank := range ranks {
		var sb strings.Builder
		sb.WriteByte(byte(chess.RankBase + rank))
		for _, file := range files {
			sb.WriteByte(' ')
			sb.WriteByte(pos.At(chess.NewSquare(file, rank)).Letter())
		}
		lines = append(lines, sb.String())
	}

	var legend strings.Builder
	legend.WriteByte(' ')
	for _, file := range files {
		legend.WriteByte(' ')
		legend.WriteByte(byte(chess.ColBase + file))
	}
	return append(lines, legend.String())
}

// WriteBoard writes the board with the metadata lines beside it, one
// metadata line per board line.
func WriteBoard(w io.Writer, pos *chess.Position, metadata []string, flipped bool) {
	board := BoardLines(pos, flipped)
	n := len(board)
	if len(metadata) > n {
		n = len(metadata)
	}

	for i := 0; i < n; i++ {
		left := ""
		if i < len(board) {
			left = board[i]
		}
		line := left
		if i < len(metadata) && metadata[i] != "" {
			line = fmt.Sprintf("%-*s%s%s", boardWidth, left, metadataGap, metadata[i])
		}
		fmt.Fprintln(w, line)
	}
}

// WriteMoveList writes numbered move texts, wrapping at maxLineLength.
// The move at cursor is bracketed; -1 brackets nothing. startPly numbers
// the first move.
func WriteMoveList(w io.Writer, texts []string, startPly, cursor, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	for i, text := range texts {
		ply := startPly + i
		switch {
		case ply%2 == 0:
			ow.Write(fmt.Sprintf("%d.", ply/2+1))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", ply/2+1))
		}
		if i == cursor {
			text = "[" + text + "]"
		}
		ow.Write(text)
	}
	ow.NewLine()
}

// StatusLine describes the side to move and its check status.
func StatusLine(g *game.Game) string {
	side := g.SideToMove()
	switch g.Status() {
	case chess.Checkmate:
		return fmt.Sprintf("%s is checkmated", side)
	case chess.Stalemate:
		return fmt.Sprintf("%s to move: stalemate", side)
	case chess.Check:
		return fmt.Sprintf("%s to move, in check", side)
	default:
		return fmt.Sprintf("%s to move", side)
	}
}

// WriteSuggestions writes ranked moves, best first, with White-positive
// scores in pawns.
func WriteSuggestions(w io.Writer, moves []chess.Move) {
	for i, m := range moves {
		fmt.Fprintf(w, "Top %d: %-6s %-7s %+.2f\n", i+1, m.String(), m.Text, m.Score)
	}
}

// OutputGame writes the parts of a game view that the display
// configuration enables, followed by any suggestions.
func OutputGame(g *game.Game, cfg *config.Config, suggestions []chess.Move) {
	w := cfg.OutputFile
	d := cfg.Display

	if d.ShowBoard {
		WriteBoard(w, g.Position(), g.Metadata(), d.Flipped)
		fmt.Fprintln(w)
	}
	if d.ShowMoves && g.Len() > 0 {
		WriteMoveList(w, g.MoveTexts(), g.StartPly(), g.Cursor(), d.MaxLineLength)
	}
	fmt.Fprintln(w, StatusLine(g))
	if d.ShowFEN {
		fmt.Fprintln(w, g.FEN())
	}
	if len(suggestions) > 0 {
		WriteSuggestions(w, suggestions)
	}
}
