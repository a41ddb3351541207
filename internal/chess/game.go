package chess

// MetadataLines is the number of free-form lines heading a game record.
const MetadataLines = 10

// Record is a game as read from a game-record file: the metadata lines
// shown beside the board and the ordered move tokens.
type Record struct {
	// Free-form header lines, exactly MetadataLines of them.
	Metadata []string

	// Move tokens in playing order, White first.
	Tokens []string

	// Source file name, if known.
	File string
}

// PlyCount returns the number of half-moves in the record.
func (r *Record) PlyCount() int {
	return len(r.Tokens)
}

// Title returns the first non-blank metadata line, or "" if there is none.
func (r *Record) Title() string {
	for _, line := range r.Metadata {
		if line != "" {
			return line
		}
	}
	return ""
}
