package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// pawnDestinations returns the squares a pawn of side on origin can reach:
// one step forward onto an empty cell, two from its starting row when both
// cells are empty, and the forward diagonals only when they hold an
// opposing piece.
func pawnDestinations(board *chess.Board, origin chess.Square, side chess.Side) chess.SquareSet {
	forward := chess.Forward(side)

	steps := 1
	if origin.Row() == chess.PawnRow(side) {
		steps = 2
	}

	var out chess.SquareSet
	out = walk(board, origin, side, []direction{{forward, 0}}, steps, quietOnly, out)
	out = walk(board, origin, side, []direction{{forward, -1}, {forward, 1}}, 1, captureOnly, out)
	return out
}
