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

// WithFEN sets the starting piece placement.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithOrigin sets the square to highlight.
func (b *ConfigBuilder) WithOrigin(square string) *ConfigBuilder {
	b.cfg.Origin = square
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithColor enables or disables ANSI colour.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Output.Color = enabled
	return b
}

// WithLabels enables or disables rank and file labels.
func (b *ConfigBuilder) WithLabels(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLabels = enabled
	return b
}

// WithSummary enables or disables the destination summary line.
func (b *ConfigBuilder) WithSummary(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowSummary = enabled
	return b
}

// WithInteractive enables the full-screen explorer.
func (b *ConfigBuilder) WithInteractive(enabled bool) *ConfigBuilder {
	b.cfg.Interactive = enabled
	return b
}

// WithListAll enables listing every occupied square's destinations.
func (b *ConfigBuilder) WithListAll(enabled bool) *ConfigBuilder {
	b.cfg.ListAll = enabled
	return b
}

// WithSession enables reading commands from the input stream.
func (b *ConfigBuilder) WithSession(enabled bool) *ConfigBuilder {
	b.cfg.Session = enabled
	return b
}

// WithInput sets the input reader for sessions.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
