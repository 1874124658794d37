// Package engine holds the game-state engine: board, turn order, win/draw detection and undo.
//
// An Engine is not safe for concurrent use; callers serialize access to it.
package engine

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

// LegacyRunLength is the fixed three-in-a-row rule regardless of board size.
const LegacyRunLength = 3

type Option func(*Engine)

// WithRunLength sets how many consecutive markers win. Zero or less means a full line of the board size.
func WithRunLength(runLength int) Option {
	return func(that *Engine) {
		if runLength < 0 {
			runLength = 0
		}
		that.runLength = runLength
	}
}

type Engine struct {
	board         entity.Board
	currentPlayer entity.Cell
	status        entity.Status
	winner        entity.Cell
	runLength     int
	history       History
}

// New returns an engine with no game started; call Start before playing.
func New(opts ...Option) *Engine {
	engine := &Engine{}
	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// Start - replaces any prior game with an empty size×size board, X to move.
func (that *Engine) Start(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	that.board = entity.NewBoard(size)
	that.currentPlayer = entity.PlayerX
	that.status = entity.StatusOngoing
	that.winner = entity.EmptyCell
	that.history.Clear()

	return size, nil
}

// ApplyMove places the current player's marker at (row, col).
// A rejected move returns the unchanged outcome together with the reason.
func (that *Engine) ApplyMove(row, col int) (entity.Outcome, error) {
	if that.status != entity.StatusOngoing {
		return that.Outcome(), apperror.ErrGameNotActive
	}

	if !that.board.InBounds(row, col) {
		return that.Outcome(), fmt.Errorf("%w: %w: (%d,%d)", apperror.ErrIllegalMove, apperror.ErrInvalidCell, row, col)
	}

	if that.board.At(row, col) != entity.EmptyCell {
		return that.Outcome(), fmt.Errorf("%w: %w: (%d,%d)", apperror.ErrIllegalMove, apperror.ErrCellOccupied, row, col)
	}

	that.history.Push(entity.MoveRecord{
		Board:  that.board.Clone(),
		Player: that.currentPlayer,
		Row:    row,
		Col:    col,
	})

	that.board[row][col] = that.currentPlayer

	switch {
	case isWinningMove(that.board, that.currentPlayer, row, col, that.effectiveRunLength()):
		that.status = entity.StatusWon
		that.winner = that.currentPlayer
	case that.board.IsFull():
		that.status = entity.StatusDraw
	default:
		that.currentPlayer = that.currentPlayer.Opponent()
	}

	return that.Outcome(), nil
}

// Undo restores the board and player from before the last move. It works in any status.
func (that *Engine) Undo() (entity.Board, entity.Cell, error) {
	record, ok := that.history.Pop()
	if !ok {
		return that.Board(), that.currentPlayer, apperror.ErrNothingToUndo
	}

	that.board = record.Board
	that.currentPlayer = record.Player
	that.status = entity.StatusOngoing
	that.winner = entity.EmptyCell

	return that.Board(), that.currentPlayer, nil
}

// Board returns a copy of the live board.
func (that *Engine) Board() entity.Board {
	return that.board.Clone()
}

func (that *Engine) Size() int {
	return that.board.Size()
}

func (that *Engine) Status() entity.Status {
	return that.status
}

func (that *Engine) Winner() entity.Cell {
	return that.winner
}

func (that *Engine) CurrentPlayer() entity.Cell {
	return that.currentPlayer
}

func (that *Engine) CanUndo() bool {
	return that.history.Len() > 0
}

func (that *Engine) HistoryLen() int {
	return that.history.Len()
}

func (that *Engine) Outcome() entity.Outcome {
	return entity.Outcome{Status: that.status, Winner: that.winner}
}

// RunLength - the configured winning run, 0 when a full line is required.
func (that *Engine) RunLength() int {
	return that.runLength
}

func (that *Engine) effectiveRunLength() int {
	if that.runLength > 0 {
		return that.runLength
	}
	return that.board.Size()
}
