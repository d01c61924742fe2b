package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/output"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

func newTestExplorer(t *testing.T) (*Explorer, tcell.SimulationScreen, *bytes.Buffer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	var log bytes.Buffer
	cfg := config.NewConfig()
	cfg.LogFile = &log
	cfg.Verbosity = config.Commentary
	return NewExplorer(screen, chess.NewBoard(), cfg), screen, &log
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// rowText reads back one screen row as text.
func rowText(screen tcell.SimulationScreen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestExplorer_CursorMovement(t *testing.T) {
	e, _, _ := newTestExplorer(t)
	testutil.AssertEqual(t, e.Cursor().String(), "e2")

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"up", key(tcell.KeyUp), "e3"},
		{"k", runeKey('k'), "e4"},
		{"right", key(tcell.KeyRight), "f4"},
		{"l", runeKey('l'), "g4"},
		{"down", key(tcell.KeyDown), "g3"},
		{"j", runeKey('j'), "g2"},
		{"left", key(tcell.KeyLeft), "f2"},
		{"h", runeKey('h'), "e2"},
	}
	for _, tt := range tests {
		if e.HandleKey(tt.ev) {
			t.Fatalf("%s: HandleKey requested quit", tt.name)
		}
		testutil.AssertEqual(t, e.Cursor().String(), tt.want, tt.name)
	}
}

func TestExplorer_CursorStopsAtEdge(t *testing.T) {
	e, _, _ := newTestExplorer(t)
	for i := 0; i < 10; i++ {
		e.HandleKey(key(tcell.KeyDown))
		e.HandleKey(key(tcell.KeyLeft))
	}
	testutil.AssertEqual(t, e.Cursor().String(), "a1")
}

func TestExplorer_SelectAndMove(t *testing.T) {
	e, _, log := newTestExplorer(t)

	e.HandleKey(key(tcell.KeyEnter))
	origin, ok := e.Selected()
	testutil.AssertTrue(t, ok, "e2 should be selected")
	testutil.AssertEqual(t, origin.String(), "e2")
	testutil.AssertEqual(t, e.Destinations().Strings(), []string{"e3", "e4"})
	testutil.AssertEqual(t, e.Status(), "e2 Light Pawn: e3 e4")

	e.HandleKey(key(tcell.KeyUp))
	e.HandleKey(key(tcell.KeyUp))
	e.HandleKey(runeKey(' '))

	_, ok = e.Selected()
	testutil.AssertFalse(t, ok, "selection clears after a move")
	testutil.AssertEqual(t, e.Board().At(chess.Sq("e4")), chess.L(chess.Pawn))
	testutil.AssertEqual(t, e.Board().At(chess.Sq("e2")), chess.EmptyCell)
	testutil.AssertEqual(t, e.Status(), "moved e2e4")
	testutil.AssertContains(t, log.String(), "explorer: e2e4")
}

func TestExplorer_SelectNonDestinationReselects(t *testing.T) {
	e, _, _ := newTestExplorer(t)

	e.HandleKey(key(tcell.KeyEnter))  // e2
	e.HandleKey(key(tcell.KeyRight))  // f2
	e.HandleKey(key(tcell.KeyEnter))

	origin, ok := e.Selected()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, origin.String(), "f2")
	testutil.AssertEqual(t, e.Board().At(chess.Sq("e2")), chess.L(chess.Pawn), "no move was made")
}

func TestExplorer_Deselect(t *testing.T) {
	e, _, _ := newTestExplorer(t)

	e.HandleKey(key(tcell.KeyEnter))
	e.HandleKey(key(tcell.KeyEnter))
	_, ok := e.Selected()
	testutil.AssertFalse(t, ok, "selecting the origin again deselects")

	e.HandleKey(key(tcell.KeyEnter))
	e.HandleKey(key(tcell.KeyEscape))
	_, ok = e.Selected()
	testutil.AssertFalse(t, ok, "escape deselects")
	testutil.AssertEqual(t, len(e.Destinations()), 0)
}

func TestExplorer_Reset(t *testing.T) {
	e, _, _ := newTestExplorer(t)
	e.Board().Relocate(chess.Sq("d1"), chess.Sq("d5"))

	e.HandleKey(runeKey('r'))
	testutil.AssertEqual(t, *e.Board(), *chess.NewBoard())
	testutil.AssertEqual(t, e.Status(), "board reset")
}

func TestExplorer_Quit(t *testing.T) {
	e, _, _ := newTestExplorer(t)
	testutil.AssertTrue(t, e.HandleKey(runeKey('q')), "q quits")
	testutil.AssertTrue(t, e.HandleKey(key(tcell.KeyCtrlC)), "ctrl-c quits")
	testutil.AssertFalse(t, e.HandleKey(runeKey('z')), "unbound keys are ignored")
}

func TestExplorer_Draw(t *testing.T) {
	e, screen, _ := newTestExplorer(t)
	e.Draw()

	testutil.AssertEqual(t, rowText(screen, 0, 27), " 8  R  N  B  Q  K  B  N  R ")
	testutil.AssertEqual(t, rowText(screen, 6, 27), " 2  p  p  p  p [p] p  p  p ")
	testutil.AssertEqual(t, rowText(screen, filesRow, 27), "    a  b  c  d  e  f  g  h ")
	testutil.AssertContains(t, rowText(screen, helpRow, 80), "q quit")

	_, _, style, _ := screen.GetContent(boardLeft+1, 0)
	fg, bg, _ := style.Decompose()
	testutil.AssertEqual(t, fg, tcell.PaletteColor(output.DarkPieceFG))
	testutil.AssertEqual(t, bg, tcell.PaletteColor(output.LightSquareBG))
}

func TestExplorer_DrawHighlight(t *testing.T) {
	e, screen, _ := newTestExplorer(t)
	e.HandleKey(key(tcell.KeyEnter))
	e.Draw()

	colour := func(sq string) tcell.Color {
		s := chess.Sq(sq)
		_, _, style, _ := screen.GetContent(boardLeft+s.Col()*cellWidth+1, s.Row())
		_, bg, _ := style.Decompose()
		return bg
	}
	testutil.AssertEqual(t, colour("e2"), tcell.PaletteColor(output.OriginBG))
	testutil.AssertEqual(t, colour("e3"), tcell.PaletteColor(output.QuietBG))
	testutil.AssertEqual(t, colour("e4"), tcell.PaletteColor(output.QuietBG))
	testutil.AssertContains(t, rowText(screen, statusRow, 80), "e2 Light Pawn: e3 e4")
}

func TestExplorer_Run(t *testing.T) {
	e, screen, _ := newTestExplorer(t)

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	testutil.AssertNoError(t, e.Run())
	testutil.AssertEqual(t, e.Board().At(chess.Sq("e3")), chess.L(chess.Pawn))
}
