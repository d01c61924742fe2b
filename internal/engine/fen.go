package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmoves-go/internal/chess"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// InitialPlacement is the FEN piece placement of the standard starting
// position. Light pieces are the upper-case (white) FEN letters.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// FEN piece characters (always English, upper case).
var fenPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece kind.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// CellToFENChar returns the FEN letter for an occupied cell: upper case for
// Light, lower case for Dark.
func CellToFENChar(cell chess.Cell) byte {
	letter, ok := fenPieceChars[cell.Piece()]
	if !ok {
		return '?'
	}
	if cell.Owned(chess.Dark) {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParsePlacement builds a board from a FEN string. Only the piece placement
// field is read; side to move, castling and clock fields are accepted and
// ignored.
func ParsePlacement(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	board := chess.EmptyBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Every rank must describe exactly eight squares.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Pos:      -1,
			Expected: "8 ranks",
			Got:      fmt.Sprintf("%d", len(ranks)),
		}
	}

	offset := 0
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := ConvertFENCharToPiece(c)
				if piece == chess.Empty {
					return &errors.ParseError{
						Err:      errors.ErrInvalidFEN,
						Input:    positions,
						Pos:      offset + i,
						Expected: "piece letter or digit",
						Got:      fmt.Sprintf("%q", c),
					}
				}
				sq, ok := chess.SquareAt(row, col)
				if !ok {
					return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", chess.BoardSize-row)
				}
				side := chess.Light
				if unicode.IsLower(rune(c)) {
					side = chess.Dark
				}
				board.Set(sq, chess.Occupied(piece, side))
				col++
			}
		}
		if col != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d describes %d squares", chess.BoardSize-row, col)
		}
		offset += len(rank) + 1
	}
	return nil
}

// FormatPlacement returns the FEN piece placement field for a board.
func FormatPlacement(board *chess.Board) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			cell := board.Squares[row][col]
			if cell.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(CellToFENChar(cell))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
