package engine

import (
	"fmt"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

// State is the exported form of an engine, used to park a game in the session store.
type State struct {
	Board         entity.Board        `json:"board"`
	CurrentPlayer entity.Cell         `json:"current_player"`
	Status        entity.Status       `json:"status"`
	Winner        entity.Cell         `json:"winner,omitempty"`
	RunLength     int                 `json:"run_length,omitempty"`
	History       []entity.MoveRecord `json:"history,omitempty"`
}

// Snapshot - returns an independent copy of the engine state.
func (that *Engine) Snapshot() State {
	return State{
		Board:         that.board.Clone(),
		CurrentPlayer: that.currentPlayer,
		Status:        that.status,
		Winner:        that.winner,
		RunLength:     that.runLength,
		History:       that.history.Records(),
	}
}

// Restore rebuilds an engine from a snapshot after checking it is consistent.
func Restore(state State) (*Engine, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	engine := New(WithRunLength(state.RunLength))
	engine.board = state.Board.Clone()
	engine.currentPlayer = state.CurrentPlayer
	engine.status = state.Status
	engine.winner = state.Winner

	for _, record := range state.History {
		record.Board = record.Board.Clone()
		engine.history.Push(record)
	}

	return engine, nil
}

func (that State) Validate() error {
	if err := that.Board.Validate(); err != nil {
		return err
	}

	if !that.CurrentPlayer.IsPlayer() {
		return fmt.Errorf("%w: unknown current player %q", apperror.ErrInvalidState, that.CurrentPlayer)
	}

	if !that.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", apperror.ErrInvalidState, that.Status)
	}

	if that.RunLength < 0 {
		return fmt.Errorf("%w: negative run length %d", apperror.ErrInvalidState, that.RunLength)
	}

	switch that.Status {
	case entity.StatusWon:
		// the winner stays the current player once the game ends
		if that.Winner != that.CurrentPlayer {
			return fmt.Errorf("%w: winner %q is not the last mover %q", apperror.ErrInvalidState, that.Winner, that.CurrentPlayer)
		}
	default:
		if that.Winner != entity.EmptyCell {
			return fmt.Errorf("%w: winner %q set while status is %s", apperror.ErrInvalidState, that.Winner, that.Status)
		}
	}

	size := that.Board.Size()
	for i, record := range that.History {
		if err := record.Board.Validate(); err != nil {
			return fmt.Errorf("history record %d: %w", i, err)
		}

		if record.Board.Size() != size {
			return fmt.Errorf("%w: history record %d has size %d, want %d", apperror.ErrInvalidState, i, record.Board.Size(), size)
		}

		if !record.Player.IsPlayer() {
			return fmt.Errorf("%w: history record %d has unknown player %q", apperror.ErrInvalidState, i, record.Player)
		}

		if !record.Board.InBounds(record.Row, record.Col) || record.Board.At(record.Row, record.Col) != entity.EmptyCell {
			return fmt.Errorf("%w: history record %d targets (%d,%d)", apperror.ErrInvalidState, i, record.Row, record.Col)
		}
	}

	return nil
}
