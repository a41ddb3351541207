package config

// DisplayConfig holds settings for printing a game.
type DisplayConfig struct {
	// ShowBoard prints the board diagram with the metadata beside it.
	ShowBoard bool

	// ShowMoves prints the numbered move list.
	ShowMoves bool

	// Flipped prints the board from Black's side.
	Flipped bool

	// ShowFEN prints the FEN of the shown position.
	ShowFEN bool

	// JSON writes a JSON document instead of text.
	JSON bool

	// MaxLineLength wraps the move list.
	MaxLineLength int
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		ShowBoard:     true,
		ShowMoves:     true,
		MaxLineLength: 80,
	}
}
