package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Square is a board coordinate. Row 0 is rank 8 (the top of the display)
// and column 0 is file 'a'. A Square can only be obtained through
// SquareAt, Offset or the parsers, so both coordinates are always in [0,8).
// The zero value is a8.
type Square struct {
	row, col uint8
}

// SquareAt returns the square at row, col. The second result is false if
// either coordinate lies off the board.
func SquareAt(row, col int) (Square, bool) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Square{}, false
	}
	return Square{row: uint8(row), col: uint8(col)}, true
}

// Sq parses an algebraic coordinate and returns that square. It panics if
// the text is not a valid coordinate and is meant for literals in tests and
// tables.
func Sq(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Row returns the row index, 0 at the top.
func (s Square) Row() int { return int(s.row) }

// Col returns the column index, 0 for file 'a'.
func (s Square) Col() int { return int(s.col) }

// File returns the file letter of the square.
func (s Square) File() byte { return ColBase + s.col }

// Rank returns the rank digit of the square.
func (s Square) Rank() byte { return LastRank - s.row }

// Offset returns the square dRow rows and dCol columns away. The second
// result is false if that square lies off the board.
func (s Square) Offset(dRow, dCol int) (Square, bool) {
	return SquareAt(int(s.row)+dRow, int(s.col)+dCol)
}

// Index returns the row-major index of the square in [0,64).
func (s Square) Index() int {
	return int(s.row)*BoardSize + int(s.col)
}

// Equal reports whether two squares are the same. go-cmp uses it to compare
// squares despite their unexported fields.
func (s Square) Equal(o Square) bool {
	return s == o
}

// String formats the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	return string([]byte{s.File(), s.Rank()})
}

// MarshalText encodes the square as its algebraic coordinate.
func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes an algebraic coordinate.
func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// ParseSquare parses a two-character algebraic coordinate such as "e4".
// Letters are accepted in either case. Rank '8' maps to row 0 and file 'a'
// to column 0.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrMalformedInput,
			Input:    text,
			Pos:      -1,
			Expected: "2 characters",
			Got:      fmt.Sprintf("%d", len(text)),
		}
	}
	return parseSquareAt(text, text, 0)
}

// parseSquareAt parses the coordinate at text[pos:pos+2], reporting errors
// against the full input.
func parseSquareAt(input, text string, pos int) (Square, error) {
	file := lower(text[pos])
	rank := text[pos+1]

	if file < FirstCol || file > LastCol {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidFile,
			Input:    input,
			Pos:      pos,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", text[pos]),
		}
	}
	if rank < FirstRank || rank > LastRank {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidRank,
			Input:    input,
			Pos:      pos + 1,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", rank),
		}
	}
	return Square{row: LastRank - rank, col: file - ColBase}, nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Move is a source and destination pair. It carries no legality.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// String formats the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a move in long algebraic form. The input is trimmed and
// may be four characters ("e2e4") or five with a separator or capture
// marker in the middle ("e2-e4", "e2xe4"); the middle character is
// discarded.
func ParseMove(text string) (Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) != 4 && len(text) != 5 {
		return Move{}, &errors.ParseError{
			Err:      errors.ErrMalformedInput,
			Input:    text,
			Pos:      -1,
			Expected: "4 or 5 characters",
			Got:      fmt.Sprintf("%d", len(text)),
		}
	}

	from, err := parseSquareAt(text, text, 0)
	if err != nil {
		return Move{}, err
	}
	to, err := parseSquareAt(text, text, len(text)-2)
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// SquareSet is a collection of distinct squares in generation order.
type SquareSet []Square

// Contains reports whether sq is in the set.
func (s SquareSet) Contains(sq Square) bool {
	for _, x := range s {
		if x.Equal(sq) {
			return true
		}
	}
	return false
}

// Mask returns the set as a 64-bit mask indexed by Square.Index.
func (s SquareSet) Mask() uint64 {
	var m uint64
	for _, sq := range s {
		m |= 1 << uint(sq.Index())
	}
	return m
}

// Strings returns the algebraic coordinates of the set in order.
func (s SquareSet) Strings() []string {
	out := make([]string, len(s))
	for i, sq := range s {
		out[i] = sq.String()
	}
	return out
}
