package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/engine"
	"github.com/rocketscienceinc/gridgame/testing/suite"
)

const sessionTTL = time.Hour

func playedState(t *testing.T) engine.State {
	t.Helper()

	game := engine.New()
	_, err := game.Start(3)
	require.NoError(t, err)
	_, err = game.ApplyMove(1, 1)
	require.NoError(t, err)

	return game.Snapshot()
}

func TestGameRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	gameRepo := NewGameRepository(st.Storage, sessionTTL)

	// When: Save is called with a played game
	err := gameRepo.Save(ctx, "123", playedState(t))

	// Then: no error should be returned, and the key expires
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "game:123").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
	assert.LessOrEqual(t, ttl, sessionTTL)
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, sessionTTL)

		// Given: a stored game
		state := playedState(t)
		require.NoError(t, gameRepo.Save(ctx, "123", state))

		// When: GetByID is called with the session ID
		retrieved, err := gameRepo.GetByID(ctx, "123")

		// Then: the retrieved state restores to the same game
		require.NoError(t, err)
		assert.Equal(t, state, *retrieved)

		restored, err := engine.Restore(*retrieved)
		require.NoError(t, err)
		assert.True(t, restored.CanUndo())
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, sessionTTL)

		// When: GetByID is called with non-existent ID
		retrieved, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, sessionTTL)

		// Given: a stored game
		require.NoError(t, gameRepo.Save(ctx, "123", playedState(t)))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, "123")

		// Then: no error should be returned and the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, sessionTTL)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, ErrGameNotFound)
	})
}
