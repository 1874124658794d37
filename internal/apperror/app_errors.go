package apperror

import "errors"

var (
	ErrGameNotActive = errors.New("game is not active")
	ErrIllegalMove   = errors.New("illegal move")
	ErrInvalidCell   = errors.New("invalid cell")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrInvalidSize   = errors.New("invalid board size")
	ErrSizeTooLarge  = errors.New("board size is too large")
	ErrInvalidState  = errors.New("invalid game state")
	ErrNotFound      = errors.New("not found")
)
