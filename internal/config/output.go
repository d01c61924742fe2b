package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// OutputFormat selects how boards are rendered.
type OutputFormat int

const (
	Text  OutputFormat = iota // ANSI-coloured grid
	Plain                     // ASCII grid with bracket markers
	JSON                      // machine-readable view
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case Plain:
		return "plain"
	case JSON:
		return "json"
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "plain", "ascii":
		return Plain, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the rendering style.
	Format OutputFormat

	// Color enables ANSI colour in Text format.
	Color bool

	// ShowLabels prints rank and file labels around the grid.
	ShowLabels bool

	// ShowSummary prints the highlighted origin and its destinations
	// beneath the grid.
	ShowSummary bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      Text,
		Color:       true,
		ShowLabels:  true,
		ShowSummary: true,
	}
}
