package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
)

func TestCell(t *testing.T) {
	t.Run("Opponent toggles between the two markers", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
	})

	t.Run("IsPlayer is false for an empty cell", func(t *testing.T) {
		assert.True(t, PlayerX.IsPlayer())
		assert.True(t, PlayerO.IsPlayer())
		assert.False(t, EmptyCell.IsPlayer())
		assert.False(t, Cell("-").IsPlayer())
	})
}

func TestStatus(t *testing.T) {
	t.Run("Won and draw are terminal", func(t *testing.T) {
		assert.True(t, StatusWon.IsTerminal())
		assert.True(t, StatusDraw.IsTerminal())
		assert.False(t, StatusOngoing.IsTerminal())
	})

	t.Run("Unknown status is not valid", func(t *testing.T) {
		assert.True(t, StatusOngoing.IsValid())
		assert.False(t, Status("waiting").IsValid())
	})
}

func TestBoard_Clone(t *testing.T) {
	// Given: a board with one marker
	board := NewBoard(3)
	board[0][0] = PlayerX

	// When: it is cloned and the clone is changed
	clone := board.Clone()
	clone[0][0] = PlayerO
	clone[2][2] = PlayerO

	// Then: the original keeps its own cells
	assert.Equal(t, PlayerX, board.At(0, 0))
	assert.Equal(t, EmptyCell, board.At(2, 2))
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Returns false while a cell is empty", func(t *testing.T) {
		// Given: a board with an empty cell
		board := Board{
			{PlayerX, PlayerO},
			{PlayerO, EmptyCell},
		}

		// Then: it is not full
		assert.False(t, board.IsFull())
	})

	t.Run("Returns true when every cell is taken", func(t *testing.T) {
		// Given: a full board
		board := Board{
			{PlayerX, PlayerO},
			{PlayerO, PlayerX},
		}

		// Then: it is full
		assert.True(t, board.IsFull())
	})
}

func TestBoard_InBounds(t *testing.T) {
	board := NewBoard(3)

	assert.True(t, board.InBounds(0, 0))
	assert.True(t, board.InBounds(2, 2))
	assert.False(t, board.InBounds(-1, 0))
	assert.False(t, board.InBounds(0, 3))
	assert.False(t, board.InBounds(3, 0))
}

func TestBoard_Validate(t *testing.T) {
	t.Run("Accepts a square board", func(t *testing.T) {
		require.NoError(t, NewBoard(4).Validate())
	})

	t.Run("Rejects a ragged board", func(t *testing.T) {
		// Given: a board whose second row is short
		board := Board{
			{EmptyCell, EmptyCell},
			{EmptyCell},
		}

		// When: validating
		err := board.Validate()

		// Then: ErrInvalidState is returned
		require.ErrorIs(t, err, apperror.ErrInvalidState)
		assert.Contains(t, err.Error(), "row 1")
	})

	t.Run("Rejects an unknown marker", func(t *testing.T) {
		board := Board{{"?"}}

		assert.ErrorIs(t, board.Validate(), apperror.ErrInvalidState)
	})
}
