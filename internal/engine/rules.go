package engine

import "github.com/rocketscienceinc/gridgame/internal/entity"

// isWinningMove checks every line through (row, col) for a run of the mover's marker.
func isWinningMove(board entity.Board, player entity.Cell, row, col, runLength int) bool {
	size := board.Size()

	switch {
	case hasRun(board, player, row, 0, 0, 1, runLength): // row
		return true
	case hasRun(board, player, 0, col, 1, 0, runLength): // column
		return true
	case row == col && hasRun(board, player, 0, 0, 1, 1, runLength): // main diagonal
		return true
	case row+col == size-1 && hasRun(board, player, 0, size-1, 1, -1, runLength): // anti-diagonal
		return true
	default:
		return false
	}
}

// hasRun walks a line from its start and resets the counter on any cell that is not the player's.
func hasRun(board entity.Board, player entity.Cell, row, col, rowStep, colStep, runLength int) bool {
	count := 0

	for board.InBounds(row, col) {
		if board.At(row, col) == player {
			count++
			if count == runLength {
				return true
			}
		} else {
			count = 0
		}

		row += rowStep
		col += colStep
	}

	return false
}
