// Package output renders boards and destination sets as text or JSON.
package output

import (
	"io"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// View is a board snapshot with an optional highlighted origin and the
// destinations computed for it. A nil Origin means nothing is highlighted.
type View struct {
	Board        *chess.Board
	Origin       *chess.Square
	Destinations chess.SquareSet
}

// NewView returns an unhighlighted view of board.
func NewView(board *chess.Board) View {
	return View{Board: board}
}

// Highlight returns a view of board with origin and its destinations marked.
func Highlight(board *chess.Board, origin chess.Square) View {
	return View{
		Board:        board,
		Origin:       &origin,
		Destinations: engine.Destinations(board, origin),
	}
}

// Captures returns the destinations that hold a piece.
func (v View) Captures() chess.SquareSet {
	var out chess.SquareSet
	for _, sq := range v.Destinations {
		if !v.Board.At(sq).IsEmpty() {
			out = append(out, sq)
		}
	}
	return out
}

// BoardWriter is the interface for rendering boards to output.
// Different implementations handle different formats (text, JSON).
type BoardWriter interface {
	// WriteView renders one board with its optional highlight.
	WriteView(v View) error

	// WriteMobility lists the destinations of every occupied square.
	WriteMobility(board *chess.Board, all []engine.Mobility) error
}

// NewBoardWriter creates the writer selected by cfg.Output.Format.
func NewBoardWriter(w io.Writer, cfg *config.Config) BoardWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output)
}
