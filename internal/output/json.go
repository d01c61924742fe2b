package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// JSONView represents a board and optional highlight in JSON format.
type JSONView struct {
	FEN       string         `json:"fen"`
	Board     [][]string     `json:"board"` // 8 rows from rank 8, cell codes "LR", "Dp", ".."
	Highlight *JSONHighlight `json:"highlight,omitempty"`
}

// JSONHighlight represents a highlighted origin and its destinations.
type JSONHighlight struct {
	Origin       string   `json:"origin"`
	Piece        string   `json:"piece"` // "Empty" for an unoccupied origin
	Side         string   `json:"side,omitempty"`
	Destinations []string `json:"destinations"`
	Captures     []string `json:"captures"`
}

// JSONMobility represents one occupied square and its destinations.
type JSONMobility struct {
	Origin       string   `json:"origin"`
	Piece        string   `json:"piece"`
	Side         string   `json:"side"`
	Destinations []string `json:"destinations"`
}

// JSONMobilityOutput holds the destinations of every occupied square.
type JSONMobilityOutput struct {
	FEN     string         `json:"fen"`
	Squares []JSONMobility `json:"squares"`
	Light   int            `json:"light"`
	Dark    int            `json:"dark"`
}

// JSONWriter writes views as indented JSON, one document per call.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteView writes a single view.
func (jw *JSONWriter) WriteView(v View) error {
	return jw.encode(ViewToJSON(v))
}

// WriteMobility writes the destinations of every occupied square.
func (jw *JSONWriter) WriteMobility(board *chess.Board, all []engine.Mobility) error {
	out := &JSONMobilityOutput{
		FEN:     engine.FormatPlacement(board),
		Squares: make([]JSONMobility, 0, len(all)),
		Light:   engine.CountDestinations(board, chess.Light),
		Dark:    engine.CountDestinations(board, chess.Dark),
	}
	for _, m := range all {
		side, _ := m.Cell.Side()
		out.Squares = append(out.Squares, JSONMobility{
			Origin:       m.Origin.String(),
			Piece:        m.Cell.Piece().String(),
			Side:         side.String(),
			Destinations: m.Destinations.Strings(),
		})
	}
	return jw.encode(out)
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ViewToJSON converts a view to JSON form.
func ViewToJSON(v View) *JSONView {
	jv := &JSONView{
		FEN:   engine.FormatPlacement(v.Board),
		Board: make([][]string, chess.BoardSize),
	}
	for row := 0; row < chess.BoardSize; row++ {
		jv.Board[row] = make([]string, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			jv.Board[row][col] = v.Board.Squares[row][col].Code()
		}
	}

	if v.Origin == nil {
		return jv
	}

	cell := v.Board.At(*v.Origin)
	hl := &JSONHighlight{
		Origin:       v.Origin.String(),
		Piece:        cell.Piece().String(),
		Destinations: v.Destinations.Strings(),
		Captures:     v.Captures().Strings(),
	}
	if side, ok := cell.Side(); ok {
		hl.Side = side.String()
	}
	jv.Highlight = hl
	return jv
}
