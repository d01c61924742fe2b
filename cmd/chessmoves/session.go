// session.go - Line-oriented command session over the input stream
package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	chesserrors "github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/output"
)

const sessionHelp = `  e2        show the destinations of the piece on e2
  e2e4      move the piece on e2 to e4 (also e2-e4, e2xe4)
  board     print the board
  fen       print the FEN piece placement
  reset     restore the initial position
  clear     remove every piece
  help      show this list
  quit      end the session (also exit, or end of input)
`

// session reads one command per line and renders the result after each.
// Bad input is reported through the log and the session carries on.
type session struct {
	cfg    *config.Config
	board  *chess.Board
	writer output.BoardWriter
}

func newSession(cfg *config.Config, board *chess.Board, writer output.BoardWriter) *session {
	return &session{cfg: cfg, board: board, writer: writer}
}

// run renders the starting board and processes commands until quit or end
// of input.
func (s *session) run() error {
	if err := s.writer.WriteView(output.NewView(s.board)); err != nil {
		return err
	}

	scanner := bufio.NewScanner(s.cfg.InputFile)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		s.cfg.Logf(config.Commentary, "> %s", line)

		quit, err := s.execute(line)
		if err != nil {
			if !isInputError(err) {
				return err
			}
			s.cfg.Logf(config.ErrorsOnly, "%s: %v", line, err)
			continue
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// execute runs one normalised command line and reports whether the session
// should end.
func (s *session) execute(line string) (bool, error) {
	switch line {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err := fmt.Fprint(s.cfg.OutputFile, sessionHelp)
		return false, err
	case "board":
		return false, s.writer.WriteView(output.NewView(s.board))
	case "fen":
		_, err := fmt.Fprintln(s.cfg.OutputFile, engine.FormatPlacement(s.board))
		return false, err
	case "reset":
		s.board.SetupInitialPosition()
		return false, s.writer.WriteView(output.NewView(s.board))
	case "clear":
		s.board.Clear()
		return false, s.writer.WriteView(output.NewView(s.board))
	}

	switch len(line) {
	case 2:
		origin, err := chess.ParseSquare(line)
		if err != nil {
			return false, err
		}
		view := output.Highlight(s.board, origin)
		s.cfg.Logf(config.Commentary, "%s", output.Summary(view))
		return false, s.writer.WriteView(view)
	case 4, 5:
		m, err := chess.ParseMove(line)
		if err != nil {
			return false, err
		}
		s.board.Apply(m)
		s.cfg.Logf(config.Commentary, "moved %s", m)
		return false, s.writer.WriteView(output.NewView(s.board))
	}
	return false, &chesserrors.ParseError{
		Err:      chesserrors.ErrMalformedInput,
		Input:    line,
		Pos:      -1,
		Expected: "square, move or command",
	}
}

// isInputError reports whether err came from parsing user input rather than
// from writing output.
func isInputError(err error) bool {
	return errors.Is(err, chesserrors.ErrMalformedInput) ||
		errors.Is(err, chesserrors.ErrInvalidFile) ||
		errors.Is(err, chesserrors.ErrInvalidRank)
}
