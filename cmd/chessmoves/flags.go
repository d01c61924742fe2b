// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmoves-go/internal/config"
)

var (
	// Board setup
	fenFlag    = flag.String("fen", "", "FEN piece placement to start from (default: initial position)")
	squareFlag = flag.String("square", "", "Highlight the destinations of this square and exit (e.g. e2)")

	// Modes
	interactive = flag.Bool("i", false, "Run the full-screen interactive explorer")
	listAll     = flag.Bool("all", false, "List the destinations of every occupied square and exit")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "text", "Output format: text, plain, json")
	noColor      = flag.Bool("nocolor", false, "Disable ANSI colours in text output")
	noLabels     = flag.Bool("nolabels", false, "Don't print rank and file labels")

	// Diagnostics
	logFile = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	quiet   = flag.Bool("q", false, "Suppress all diagnostics")
	verbose = flag.Bool("v", false, "Echo every session command and its result")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.FEN = *fenFlag
	cfg.Origin = *squareFlag
	cfg.Interactive = *interactive
	cfg.ListAll = *listAll

	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyVerbosityFlags(cfg)
	applyModeFlags(cfg)
	return nil
}

// applyOutputFlags applies output format flags.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	if *noColor {
		cfg.Output.Color = false
	}
	if *noLabels {
		cfg.Output.ShowLabels = false
	}
	return nil
}

// applyVerbosityFlags applies the diagnostic level flags. -q wins over -v.
func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
}

// applyModeFlags enables the command session when no one-shot mode is
// selected.
func applyModeFlags(cfg *config.Config) {
	cfg.Session = !cfg.Interactive && !cfg.ListAll && cfg.Origin == ""
}
