// Package chess provides the board model and coordinate types shared by the
// move generator and the renderers.
package chess

// Side is the owner of a piece. Light pieces start on rows 6 and 7 and
// advance toward row 0; Dark pieces start on rows 0 and 1.
type Side int

const (
	Light Side = iota
	Dark
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Dark {
		return "Dark"
	}
	return "Light"
}

// Opposite returns the opposing side.
func (s Side) Opposite() Side {
	if s == Light {
		return Dark
	}
	return Light
}

// Piece represents a chess piece kind.
type Piece int

const (
	Empty Piece = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the display letter of a piece. Pawns are shown in lower
// case, every other kind in upper case.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'p', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// PawnRow returns the row on which a side's pawns start.
func PawnRow(side Side) int {
	if side == Light {
		return BoardSize - 2
	}
	return 1
}

// BackRow returns the row holding a side's pieces in the initial position.
func BackRow(side Side) int {
	if side == Light {
		return BoardSize - 1
	}
	return 0
}

// Forward returns the row delta of a pawn advance: -1 for Light, +1 for Dark.
func Forward(side Side) int {
	if side == Light {
		return -1
	}
	return 1
}

// Cell is the content of one board square: either empty or exactly one
// piece owned by one side. The zero value is an empty cell.
type Cell struct {
	piece Piece
	side  Side
}

// EmptyCell is the content of an unoccupied square.
var EmptyCell = Cell{}

// Occupied returns a cell holding the given piece. Passing Empty yields an
// empty cell regardless of side.
func Occupied(piece Piece, side Side) Cell {
	if piece <= Empty || piece >= NumPieceValues {
		return EmptyCell
	}
	return Cell{piece: piece, side: side}
}

// L creates a Light piece cell.
func L(piece Piece) Cell {
	return Occupied(piece, Light)
}

// D creates a Dark piece cell.
func D(piece Piece) Cell {
	return Occupied(piece, Dark)
}

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c.piece == Empty
}

// Piece returns the kind of piece in the cell, or Empty.
func (c Cell) Piece() Piece {
	return c.piece
}

// Side returns the owner of the piece. The second result is false for an
// empty cell.
func (c Cell) Side() (Side, bool) {
	if c.IsEmpty() {
		return Light, false
	}
	return c.side, true
}

// Owned reports whether the cell holds a piece belonging to side.
func (c Cell) Owned(side Side) bool {
	return !c.IsEmpty() && c.side == side
}

// Equal reports whether two cells hold the same content. go-cmp uses it to
// compare cells despite their unexported fields.
func (c Cell) Equal(o Cell) bool {
	return c == o
}

// Code returns a two-character code for the cell: 'L' or 'D' followed by the
// piece letter, or ".." for an empty cell.
func (c Cell) Code() string {
	if c.IsEmpty() {
		return ".."
	}
	prefix := byte('L')
	if c.side == Dark {
		prefix = 'D'
	}
	return string([]byte{prefix, c.piece.Letter()})
}

// String returns a readable description such as "Light Knight".
func (c Cell) String() string {
	if c.IsEmpty() {
		return "Empty"
	}
	return c.side.String() + " " + c.piece.String()
}
