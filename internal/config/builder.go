package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithWorkers sets the number of search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithSuggestion enables printing the best move.
func (b *ConfigBuilder) WithSuggestion(enabled bool) *ConfigBuilder {
	b.cfg.Search.Suggest = enabled
	return b
}

// WithTop sets how many ranked moves are printed.
func (b *ConfigBuilder) WithTop(n int) *ConfigBuilder {
	b.cfg.Search.Top = n
	return b
}

// WithCache sets the evaluation cache capacity, 0 for no cache.
func (b *ConfigBuilder) WithCache(size int) *ConfigBuilder {
	b.cfg.Search.CacheSize = size
	return b
}

// WithFlipped prints the board from Black's side.
func (b *ConfigBuilder) WithFlipped(flipped bool) *ConfigBuilder {
	b.cfg.Display.Flipped = flipped
	return b
}

// WithBoard controls whether the board diagram is printed.
func (b *ConfigBuilder) WithBoard(show bool) *ConfigBuilder {
	b.cfg.Display.ShowBoard = show
	return b
}

// WithFEN controls whether the FEN line is printed.
func (b *ConfigBuilder) WithFEN(show bool) *ConfigBuilder {
	b.cfg.Display.ShowFEN = show
	return b
}

// WithJSON selects JSON output.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Display.JSON = enabled
	return b
}

// WithPly sets the move index shown after loading.
func (b *ConfigBuilder) WithPly(ply int) *ConfigBuilder {
	b.cfg.Ply = ply
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
