package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// direction is a (row, column) step.
type direction struct {
	dRow, dCol int
}

// Ray sets. Orthogonal and diagonal rays are listed clockwise from north so
// generation order is stable.
var (
	orthogonal  = []direction{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	diagonal    = []direction{{-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
	royal       = union(orthogonal, diagonal)
	knightJumps = []direction{{-2, 1}, {-1, 2}, {1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}}
)

// unlimited is the longest possible ray on the board.
const unlimited = chess.BoardSize - 1

// captureMode controls how a walk treats occupied and empty cells.
type captureMode int

const (
	// moveOrCapture adds empty cells and opposing pieces.
	moveOrCapture captureMode = iota
	// quietOnly adds empty cells and stops at any piece.
	quietOnly
	// captureOnly adds opposing pieces and never empty cells.
	captureOnly
)

func union(sets ...[]direction) []direction {
	var out []direction
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// walk steps from origin along each direction, at most maxSteps squares,
// and appends every reachable square for a piece of side to out. A ray
// stops at the board edge or at the first occupied cell; that cell is
// included only if it holds an opposing piece and mode allows captures.
func walk(board *chess.Board, origin chess.Square, side chess.Side, dirs []direction, maxSteps int, mode captureMode, out chess.SquareSet) chess.SquareSet {
	for _, d := range dirs {
		sq := origin
		for step := 0; step < maxSteps; step++ {
			next, ok := sq.Offset(d.dRow, d.dCol)
			if !ok {
				break
			}
			cell := board.At(next)
			if cell.IsEmpty() {
				if mode != captureOnly {
					out = append(out, next)
				}
				sq = next
				continue
			}
			if !cell.Owned(side) && mode != quietOnly {
				out = append(out, next)
			}
			break
		}
	}
	return out
}
