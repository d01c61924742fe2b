package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	chesserrors "github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialPlacement,
			checkFn: func(b *chess.Board) bool {
				return *b == *chess.NewBoard()
			},
		},
		{
			name: "full FEN record",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.At(chess.Sq("e4")) == chess.L(chess.Pawn) &&
					b.At(chess.Sq("e2")).IsEmpty() &&
					b.At(chess.Sq("e8")) == chess.D(chess.King)
			},
		},
		{
			name: "sparse board",
			fen:  "8/8/8/8/2R3p1/8/8/8",
			checkFn: func(b *chess.Board) bool {
				return b.At(chess.Sq("c4")) == chess.L(chess.Rook) &&
					b.At(chess.Sq("g4")) == chess.D(chess.Pawn) &&
					b.Occupancy() == chess.SquareSet{chess.Sq("c4"), chess.Sq("g4")}.Mask()
			},
		},
		{
			name: "empty board",
			fen:  "8/8/8/8/8/8/8/8",
			checkFn: func(b *chess.Board) bool {
				return b.Occupancy() == 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := ParsePlacement(tt.fen)
			if err != nil {
				t.Fatalf("ParsePlacement(%q) error: %v", tt.fen, err)
			}
			if !tt.checkFn(board) {
				t.Errorf("ParsePlacement(%q) produced unexpected board:\n%s", tt.fen, FormatPlacement(board))
			}
		})
	}
}

func TestParsePlacement_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"seven ranks", "8/8/8/8/8/8/8"},
		{"nine ranks", "8/8/8/8/8/8/8/8/8"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX"},
		{"digit nine", "9/8/8/8/8/8/8/8"},
		{"short rank", "7/8/8/8/8/8/8/8"},
		{"long rank", "ppppppppp/8/8/8/8/8/8/8"},
		{"digit overflow", "44p/8/8/8/8/8/8/8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlacement(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("ParsePlacement(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestParsePlacement_ErrorContext(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{"", "empty FEN string: invalid FEN string"},
		{"ppppppppp/8/8/8/8/8/8/8", "rank 8 overflows: invalid FEN string"},
		{"8/8/8/8/8/8/8/7", "rank 1 describes 7 squares: invalid FEN string"},
		{"8/8/8/8/8/8/8/44p", "rank 1 overflows: invalid FEN string"},
	}

	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			_, err := ParsePlacement(tt.fen)
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
			testutil.AssertEqual(t, err.Error(), tt.want)
		})
	}
}

func TestParsePlacement_ErrorPosition(t *testing.T) {
	_, err := ParsePlacement("8/8/8/8/8/8/8/7X")
	var pe *chesserrors.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v; want *ParseError", err)
	}
	testutil.AssertEqual(t, pe.Pos, 15)
}

func TestFormatPlacement(t *testing.T) {
	tests := []string{
		InitialPlacement,
		"8/8/8/8/2R3p1/8/8/8",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
		"8/8/8/8/8/8/8/8",
		"7k/8/8/8/8/8/8/K7",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			board, err := ParsePlacement(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, FormatPlacement(board), fen)
		})
	}
}

func TestFormatPlacement_AfterRelocate(t *testing.T) {
	board := chess.NewBoard()
	board.Relocate(chess.Sq("e2"), chess.Sq("e4"))
	testutil.AssertEqual(t, FormatPlacement(board), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR")
}

func TestCellToFENChar(t *testing.T) {
	testutil.AssertEqual(t, CellToFENChar(chess.L(chess.Pawn)), byte('P'))
	testutil.AssertEqual(t, CellToFENChar(chess.D(chess.Pawn)), byte('p'))
	testutil.AssertEqual(t, CellToFENChar(chess.D(chess.Queen)), byte('q'))
	testutil.AssertEqual(t, CellToFENChar(chess.EmptyCell), byte('?'))
}
