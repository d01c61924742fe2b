// Package ui provides a full-screen terminal board explorer. The cursor
// selects a square, its destinations are highlighted, and choosing a
// highlighted square relocates the piece there. No turn order is enforced.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/output"
)

// Screen layout.
const (
	boardLeft = 3 // columns taken by the rank labels
	cellWidth = 3
	filesRow  = chess.BoardSize
	statusRow = chess.BoardSize + 2
	helpRow   = chess.BoardSize + 3
)

const helpText = "arrows/hjkl move  enter select/move  esc clear  r reset  q quit"

// Explorer is the interactive board view.
type Explorer struct {
	screen   tcell.Screen
	cfg      *config.Config
	board    *chess.Board
	cursor   chess.Square
	selected *chess.Square
	dests    chess.SquareSet
	status   string
}

// NewExplorer creates an explorer drawing board on screen. The cursor
// starts on e2.
func NewExplorer(screen tcell.Screen, board *chess.Board, cfg *config.Config) *Explorer {
	return &Explorer{
		screen: screen,
		cfg:    cfg,
		board:  board,
		cursor: chess.Sq("e2"),
		status: "select a square",
	}
}

// Run opens a terminal screen and runs the explorer until the user quits.
func Run(board *chess.Board, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising terminal: %w", err)
	}
	defer screen.Fini()

	return NewExplorer(screen, board, cfg).Run()
}

// Run processes events until quit is requested or the screen is closed.
func (e *Explorer) Run() error {
	for {
		e.Draw()
		e.screen.Show()

		switch ev := e.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			if e.HandleKey(ev) {
				return nil
			}
		}
	}
}

// Board returns the board being explored.
func (e *Explorer) Board() *chess.Board { return e.board }

// Cursor returns the square under the cursor.
func (e *Explorer) Cursor() chess.Square { return e.cursor }

// Selected returns the highlighted origin, if any.
func (e *Explorer) Selected() (chess.Square, bool) {
	if e.selected == nil {
		return chess.Square{}, false
	}
	return *e.selected, true
}

// Destinations returns the destinations of the selected square.
func (e *Explorer) Destinations() chess.SquareSet { return e.dests }

// Status returns the current status line.
func (e *Explorer) Status() string { return e.status }

// HandleKey applies one key press and reports whether to quit.
func (e *Explorer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		e.moveCursor(-1, 0)
	case tcell.KeyDown:
		e.moveCursor(1, 0)
	case tcell.KeyLeft:
		e.moveCursor(0, -1)
	case tcell.KeyRight:
		e.moveCursor(0, 1)
	case tcell.KeyEnter:
		e.activate()
	case tcell.KeyEscape:
		e.clearSelection()
		e.status = "select a square"
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			e.moveCursor(-1, 0)
		case 'j':
			e.moveCursor(1, 0)
		case 'h':
			e.moveCursor(0, -1)
		case 'l':
			e.moveCursor(0, 1)
		case ' ':
			e.activate()
		case 'r':
			e.board.SetupInitialPosition()
			e.clearSelection()
			e.status = "board reset"
			e.cfg.Logf(config.Commentary, "explorer: reset")
		}
	}
	return false
}

func (e *Explorer) moveCursor(dRow, dCol int) {
	if sq, ok := e.cursor.Offset(dRow, dCol); ok {
		e.cursor = sq
	}
}

// activate selects the cursor square, or relocates the selected piece when
// the cursor is on one of its destinations.
func (e *Explorer) activate() {
	if e.selected != nil && e.selected.Equal(e.cursor) {
		e.clearSelection()
		e.status = "select a square"
		return
	}

	if e.selected != nil && e.dests.Contains(e.cursor) {
		m := chess.Move{From: *e.selected, To: e.cursor}
		e.board.Apply(m)
		e.clearSelection()
		e.status = "moved " + m.String()
		e.cfg.Logf(config.Commentary, "explorer: %s", m)
		return
	}

	origin := e.cursor
	e.selected = &origin
	e.dests = engine.Destinations(e.board, origin)
	e.status = output.Summary(output.View{Board: e.board, Origin: e.selected, Destinations: e.dests})
}

func (e *Explorer) clearSelection() {
	e.selected = nil
	e.dests = nil
}

// view returns the board and current highlight for rendering.
func (e *Explorer) view() output.View {
	return output.View{Board: e.board, Origin: e.selected, Destinations: e.dests}
}

// Draw paints the board, labels, status line and key help.
func (e *Explorer) Draw() {
	e.screen.Clear()
	v := e.view()
	label := tcell.StyleDefault.Bold(true)

	for row := 0; row < chess.BoardSize; row++ {
		e.drawText(0, row, fmt.Sprintf(" %c ", chess.LastRank-row), label)
		for col := 0; col < chess.BoardSize; col++ {
			sq, _ := chess.SquareAt(row, col)
			fg, bg := output.CellColours(v, sq)
			style := tcell.StyleDefault.
				Foreground(tcell.PaletteColor(fg)).
				Background(tcell.PaletteColor(bg)).
				Bold(true)

			left, right := ' ', ' '
			if sq.Equal(e.cursor) {
				left, right = '[', ']'
			}
			x := boardLeft + col*cellWidth
			e.screen.SetContent(x, row, left, nil, style)
			e.screen.SetContent(x+1, row, rune(output.Symbol(v.Board.At(sq))), nil, style)
			e.screen.SetContent(x+2, row, right, nil, style)
		}
	}
	for col := 0; col < chess.BoardSize; col++ {
		e.drawText(boardLeft+col*cellWidth, filesRow, fmt.Sprintf(" %c ", chess.FirstCol+col), label)
	}

	e.drawText(0, statusRow, e.status, tcell.StyleDefault)
	e.drawText(0, helpRow, helpText, tcell.StyleDefault.Dim(true))
}

func (e *Explorer) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		e.screen.SetContent(x+i, y, r, nil, style)
	}
}
