// Package config provides configuration for chessmoves.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Verbosity levels for diagnostics written to LogFile.
const (
	Silent     = 0 // nothing
	ErrorsOnly = 1 // parse and command errors
	Commentary = 2 // every command and its result
)

// Config holds all program configuration.
type Config struct {
	// Board setup: FEN piece placement. Empty means the initial position.
	FEN string

	// Origin is the square to highlight in one-shot mode (e.g. "e2").
	Origin string

	// Mode selection
	Interactive bool // run the full-screen explorer
	ListAll     bool // list destinations for every occupied square
	Session     bool // read commands from the input stream

	// Output formatting
	Output *OutputConfig

	// Diagnostics
	Verbosity int

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:     NewOutputConfig(),
		Verbosity:  ErrorsOnly,
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports configuration values that cannot work together.
func (c *Config) Validate() error {
	if c.Output == nil {
		return fmt.Errorf("missing output settings: %w", errors.ErrInvalidConfig)
	}
	if c.Output.Format < Text || c.Output.Format > JSON {
		return fmt.Errorf("output format %d: %w", c.Output.Format, errors.ErrInvalidConfig)
	}
	if c.Interactive && c.Output.Format == JSON {
		return fmt.Errorf("interactive mode cannot write JSON: %w", errors.ErrInvalidConfig)
	}
	if c.Interactive && c.ListAll {
		return fmt.Errorf("interactive mode cannot be combined with listing: %w", errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	// The explorer owns the terminal, so commentary needs its own file.
	if c.Interactive && c.Verbosity >= Commentary && c.LogFile == os.Stderr {
		return fmt.Errorf("interactive commentary on stderr would corrupt the screen, use -log: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
