package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// 256-colour palette entries shared by the ANSI renderer and the
// interactive explorer.
const (
	LightSquareBG = 194
	DarkSquareBG  = 77
	OriginBG      = 220
	QuietBG       = 117
	CaptureBG     = 203
	LightPieceFG  = 231
	DarkPieceFG   = 233
)

// marker classifies a square for highlighting.
type marker int

const (
	unmarked marker = iota
	originMark
	quietMark
	captureMark
)

// TextWriter renders boards as an 8x8 character grid, either with ANSI
// colours or as plain ASCII.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

func (tw *TextWriter) coloured() bool {
	return tw.cfg.Format == config.Text && tw.cfg.Color
}

// WriteView renders the board. Rank labels run 8 to 1 down the left edge
// and file labels a to h along the bottom.
func (tw *TextWriter) WriteView(v View) error {
	bw := bufio.NewWriter(tw.w)
	marks := markers(v)

	for row := 0; row < chess.BoardSize; row++ {
		if tw.cfg.ShowLabels {
			tw.label(bw, fmt.Sprintf(" %c ", chess.LastRank-row))
		}
		for col := 0; col < chess.BoardSize; col++ {
			sq, _ := chess.SquareAt(row, col)
			if tw.coloured() {
				writeColourCell(bw, sq, v.Board.At(sq), marks[sq.Index()])
			} else {
				writePlainCell(bw, v.Board.At(sq), marks[sq.Index()])
			}
		}
		bw.WriteByte('\n')
	}

	if tw.cfg.ShowLabels {
		bw.WriteString("   ")
		for col := 0; col < chess.BoardSize; col++ {
			if tw.coloured() {
				tw.label(bw, fmt.Sprintf(" %c ", chess.FirstCol+col))
			} else {
				fmt.Fprintf(bw, " %c  ", chess.FirstCol+col)
			}
		}
		bw.WriteByte('\n')
	}

	if tw.cfg.ShowSummary && v.Origin != nil {
		fmt.Fprintf(bw, "%s\n", Summary(v))
	}
	return bw.Flush()
}

// WriteMobility writes one line per occupied square: its code, the square
// and the destinations in generation order.
func (tw *TextWriter) WriteMobility(board *chess.Board, all []engine.Mobility) error {
	bw := bufio.NewWriter(tw.w)
	for _, m := range all {
		fmt.Fprintf(bw, "%s %s: %s\n", m.Cell.Code(), m.Origin, joinSquares(m.Destinations))
	}
	fmt.Fprintf(bw, "light %d, dark %d\n",
		engine.CountDestinations(board, chess.Light),
		engine.CountDestinations(board, chess.Dark))
	return bw.Flush()
}

// Summary describes a highlighted view in one line, e.g.
// "e2 Light Pawn: e3 e4".
func Summary(v View) string {
	if v.Origin == nil {
		return ""
	}
	cell := v.Board.At(*v.Origin)
	return fmt.Sprintf("%s %s: %s", *v.Origin, cell, joinSquares(v.Destinations))
}

func joinSquares(set chess.SquareSet) string {
	if len(set) == 0 {
		return "-"
	}
	return strings.Join(set.Strings(), " ")
}

func (tw *TextWriter) label(bw *bufio.Writer, text string) {
	if tw.coloured() {
		fmt.Fprintf(bw, "\033[1m%s\033[0m", text)
		return
	}
	bw.WriteString(text)
}

// markers returns the highlight class of every square indexed by
// Square.Index.
func markers(v View) [chess.BoardSize * chess.BoardSize]marker {
	var marks [chess.BoardSize * chess.BoardSize]marker
	if v.Origin == nil {
		return marks
	}
	for _, sq := range v.Destinations {
		if v.Board.At(sq).IsEmpty() {
			marks[sq.Index()] = quietMark
		} else {
			marks[sq.Index()] = captureMark
		}
	}
	marks[v.Origin.Index()] = originMark
	return marks
}

// CellColours returns the foreground and background palette entries for a
// square of v.
func CellColours(v View, sq chess.Square) (fg, bg int) {
	return cellColours(sq, v.Board.At(sq), markers(v)[sq.Index()])
}

func cellColours(sq chess.Square, cell chess.Cell, mark marker) (fg, bg int) {
	bg = LightSquareBG
	if (sq.Row()+sq.Col())%2 == 1 {
		bg = DarkSquareBG
	}
	switch mark {
	case originMark:
		bg = OriginBG
	case quietMark:
		bg = QuietBG
	case captureMark:
		bg = CaptureBG
	}

	fg = LightPieceFG
	if cell.Owned(chess.Dark) {
		fg = DarkPieceFG
	}
	return fg, bg
}

// Symbol returns the display character of a cell, a space when empty.
func Symbol(cell chess.Cell) byte {
	if cell.IsEmpty() {
		return ' '
	}
	return cell.Piece().Letter()
}

func writeColourCell(bw *bufio.Writer, sq chess.Square, cell chess.Cell, mark marker) {
	fg, bg := cellColours(sq, cell, mark)
	fmt.Fprintf(bw, "\033[1;38;5;%d;48;5;%dm %c \033[0m", fg, bg, Symbol(cell))
}

// writePlainCell writes a four-character cell: the cell code framed by
// "[ ]" for the origin, "* *" for a quiet destination and "x x" for a
// capture.
func writePlainCell(bw *bufio.Writer, cell chess.Cell, mark marker) {
	left, right := byte(' '), byte(' ')
	switch mark {
	case originMark:
		left, right = '[', ']'
	case quietMark:
		left, right = '*', '*'
	case captureMark:
		left, right = 'x', 'x'
	}
	bw.WriteByte(left)
	bw.WriteString(cell.Code())
	bw.WriteByte(right)
}
