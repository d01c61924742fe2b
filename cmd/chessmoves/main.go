// chessmoves renders a chess board in the terminal and shows where the piece
// on a chosen square may move. Moves follow piece movement rules only: there
// is no check, castling, en passant, promotion or turn order.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/output"
	"github.com/lgbarn/chessmoves-go/internal/ui"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmoves version %s\n", programVersion)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected arguments: %v\n\n", flag.Args())
		usage()
		os.Exit(2)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The log destination takes part in validation.
	logOut := setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeFiles(logOut) //nolint:errcheck,gosec // exiting with the validation error
		os.Exit(1)
	}

	board, err := loadBoard(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing FEN: %v\n", err)
		closeFiles(logOut) //nolint:errcheck,gosec // exiting with the FEN error
		os.Exit(1)
	}

	out := setupOutputFile(cfg)

	err = run(cfg, board)
	if cerr := closeFiles(out, logOut); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags. It
// returns the opened file, or nil when logging stays on stderr.
func setupLogFile(cfg *config.Config) *os.File {
	if *logFile == "" {
		return nil
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return file
}

// setupOutputFile configures the output file based on command-line flags. It
// returns the opened file, or nil when output stays on stdout.
func setupOutputFile(cfg *config.Config) *os.File {
	if *outputFile == "" {
		return nil
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return file
}

// closeFiles closes every non-nil file and returns the first failure.
func closeFiles(files ...*os.File) error {
	var first error
	for _, f := range files {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && first == nil {
			first = fmt.Errorf("closing %s: %w", f.Name(), err)
		}
	}
	return first
}

// loadBoard builds the starting board from cfg.FEN.
func loadBoard(cfg *config.Config) (*chess.Board, error) {
	if cfg.FEN == "" {
		return chess.NewBoard(), nil
	}
	return engine.ParsePlacement(cfg.FEN)
}

// run executes the mode selected by cfg against board.
func run(cfg *config.Config, board *chess.Board) error {
	if cfg.Interactive {
		return ui.Run(board, cfg)
	}

	writer := output.NewBoardWriter(cfg.OutputFile, cfg)
	switch {
	case cfg.ListAll:
		return writer.WriteMobility(board, engine.AllDestinations(board))
	case cfg.Origin != "":
		origin, err := chess.ParseSquare(cfg.Origin)
		if err != nil {
			return err
		}
		return writer.WriteView(output.Highlight(board, origin))
	case cfg.Session:
		return newSession(cfg, board, writer).run()
	default:
		return writer.WriteView(output.NewView(board))
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmoves [options]\n\n")
	fmt.Fprintf(os.Stderr, "Shows a chess board and the squares a piece may move to.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nWithout -square, -all or -i, commands are read from stdin:\n")
	fmt.Fprint(os.Stderr, sessionHelp)
}
