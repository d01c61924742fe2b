package chess

// Board is an 8x8 grid of cells in row-major order. Squares[0] is the top
// row (rank 8) and Squares[r][0] is file 'a'. Board is plain data: copying
// the value copies the whole position.
type Board struct {
	Squares [BoardSize][BoardSize]Cell
}

// backRank maps a column to the piece standing on it in the initial position.
var backRank = [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns a board set up in the standard starting position.
func NewBoard() *Board {
	b := EmptyBoard()
	b.SetupInitialPosition()
	return b
}

// EmptyBoard returns a board with no pieces on it.
func EmptyBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	for col := 0; col < BoardSize; col++ {
		b.Squares[BackRow(Dark)][col] = D(backRank[col])
		b.Squares[PawnRow(Dark)][col] = D(Pawn)
		b.Squares[PawnRow(Light)][col] = L(Pawn)
		b.Squares[BackRow(Light)][col] = L(backRank[col])
	}
}

// Clear removes every piece from the board.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Cell{}
}

// At returns the cell at the given square.
func (b *Board) At(sq Square) Cell {
	return b.Squares[sq.row][sq.col]
}

// Set places a cell at the given square.
func (b *Board) Set(sq Square, cell Cell) {
	b.Squares[sq.row][sq.col] = cell
}

// Relocate copies the content of src to dest and empties src. No legality
// check is made: relocating from an empty square empties dest, whatever
// stood on dest is discarded, and a relocation onto src itself leaves the
// square empty.
func (b *Board) Relocate(src, dest Square) {
	b.Set(dest, b.At(src))
	b.Set(src, EmptyCell)
}

// Apply relocates the piece described by m.
func (b *Board) Apply(m Move) {
	b.Relocate(m.From, m.To)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Occupancy returns a mask of every occupied square indexed by Square.Index.
func (b *Board) Occupancy() uint64 {
	var m uint64
	b.Each(func(sq Square, c Cell) {
		if !c.IsEmpty() {
			m |= 1 << uint(sq.Index())
		}
	})
	return m
}

// Each calls fn for every square in row-major order.
func (b *Board) Each(fn func(Square, Cell)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			fn(Square{row: uint8(row), col: uint8(col)}, b.Squares[row][col])
		}
	}
}
