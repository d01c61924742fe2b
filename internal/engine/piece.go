package engine

import "github.com/lgbarn/chessmoves-go/internal/chess"

// movement describes how a non-pawn piece travels.
type movement struct {
	dirs     []direction
	maxSteps int
}

// movements is indexed by chess.Piece. The queen reuses the rook and
// bishop rays through royal.
var movements = [chess.NumPieceValues]movement{
	chess.Knight: {dirs: knightJumps, maxSteps: 1},
	chess.Bishop: {dirs: diagonal, maxSteps: unlimited},
	chess.Rook:   {dirs: orthogonal, maxSteps: unlimited},
	chess.Queen:  {dirs: royal, maxSteps: unlimited},
	chess.King:   {dirs: royal, maxSteps: 1},
}

// pieceDestinations returns the squares a knight, bishop, rook, queen or
// king of side on origin can reach.
func pieceDestinations(board *chess.Board, origin chess.Square, piece chess.Piece, side chess.Side) chess.SquareSet {
	m := movements[piece]
	return walk(board, origin, side, m.dirs, m.maxSteps, moveOrCapture, nil)
}
