// Package engine computes where pieces can move using piece-movement rules
// alone. Check, castling, en passant, promotion and turn order are not
// considered.
package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// Destinations returns every square the piece on origin could move to,
// honouring blocking pieces and distinguishing captures from blocks. An
// empty origin yields an empty set. The order is deterministic: rays in
// clockwise order from north, nearest square first.
func Destinations(board *chess.Board, origin chess.Square) chess.SquareSet {
	cell := board.At(origin)
	side, ok := cell.Side()
	if !ok {
		return nil
	}

	if cell.Piece() == chess.Pawn {
		return pawnDestinations(board, origin, side)
	}
	return pieceDestinations(board, origin, cell.Piece(), side)
}

// Mobility is the destination set of one occupied square.
type Mobility struct {
	Origin       chess.Square
	Cell         chess.Cell
	Destinations chess.SquareSet
}

// AllDestinations returns the destination set of every occupied square in
// row-major order. Pieces with no destinations are included with an empty
// set.
func AllDestinations(board *chess.Board) []Mobility {
	var out []Mobility
	board.Each(func(sq chess.Square, cell chess.Cell) {
		if cell.IsEmpty() {
			return
		}
		out = append(out, Mobility{
			Origin:       sq,
			Cell:         cell,
			Destinations: Destinations(board, sq),
		})
	})
	return out
}

// CountDestinations returns the total number of destinations available to
// side's pieces.
func CountDestinations(board *chess.Board, side chess.Side) int {
	n := 0
	for _, m := range AllDestinations(board) {
		if m.Cell.Owned(side) {
			n += len(m.Destinations)
		}
	}
	return n
}
