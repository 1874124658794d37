package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

func TestEngine_SnapshotRestore(t *testing.T) {
	t.Run("Restored engine continues the same game", func(t *testing.T) {
		// Given: a game with history under the legacy rule
		engine := startGame(t, 4, WithRunLength(LegacyRunLength))
		play(t, engine, move{0, 0}, move{1, 0}, move{0, 1})

		// When: it is snapshotted and restored
		restored, err := Restore(engine.Snapshot())
		require.NoError(t, err)

		// Then: both engines report the same state
		assert.Equal(t, engine.Snapshot(), restored.Snapshot())
		assert.Equal(t, LegacyRunLength, restored.RunLength())

		// Then: both react the same to the next move and to undo
		expected := play(t, engine, move{1, 1})
		actual := play(t, restored, move{1, 1})
		assert.Equal(t, expected, actual)

		for engine.CanUndo() {
			_, _, err = engine.Undo()
			require.NoError(t, err)
			_, _, err = restored.Undo()
			require.NoError(t, err)
		}
		assert.Equal(t, engine.Snapshot(), restored.Snapshot())
	})

	t.Run("Snapshot is independent of the engine", func(t *testing.T) {
		// Given: a snapshot of a game with one move
		engine := startGame(t, 3)
		play(t, engine, move{0, 0})
		state := engine.Snapshot()

		// When: the snapshot is modified
		state.Board[2][2] = entity.PlayerO
		state.History[0].Board[1][1] = entity.PlayerO

		// Then: the engine and its history are untouched
		assert.Equal(t, entity.EmptyCell, engine.Board().At(2, 2))
		board, _, err := engine.Undo()
		require.NoError(t, err)
		assert.Equal(t, entity.NewBoard(3), board)
	})
}

func TestState_Validate(t *testing.T) {
	valid := func() State {
		engine := New()
		_, _ = engine.Start(3)
		_, _ = engine.ApplyMove(0, 0)
		return engine.Snapshot()
	}

	tests := []struct {
		name   string
		mutate func(state *State)
	}{
		{"empty board", func(state *State) { state.Board = nil }},
		{"ragged board", func(state *State) { state.Board[1] = state.Board[1][:2] }},
		{"unknown cell", func(state *State) { state.Board[2][2] = "Z" }},
		{"unknown player", func(state *State) { state.CurrentPlayer = entity.EmptyCell }},
		{"unknown status", func(state *State) { state.Status = "paused" }},
		{"negative run length", func(state *State) { state.RunLength = -1 }},
		{"winner while ongoing", func(state *State) { state.Winner = entity.PlayerX }},
		{"winner is not last mover", func(state *State) {
			state.Status = entity.StatusWon
			state.Winner = entity.PlayerX
		}},
		{"history of other size", func(state *State) { state.History[0].Board = entity.NewBoard(4) }},
		{"history target occupied", func(state *State) { state.History[0].Board[0][0] = entity.PlayerO }},
		{"history target out of bounds", func(state *State) { state.History[0].Row = 5 }},
		{"history with unknown player", func(state *State) { state.History[0].Player = "Z" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a valid snapshot broken in one way
			state := valid()
			tt.mutate(&state)

			// When: it is restored
			engine, err := Restore(state)

			// Then: ErrInvalidState is returned
			require.ErrorIs(t, err, apperror.ErrInvalidState)
			assert.Nil(t, engine)
		})
	}

	t.Run("valid snapshot", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})
}
