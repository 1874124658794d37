package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/engine"
)

var ErrGameNotFound = fmt.Errorf("game %w", apperror.ErrNotFound)

// GameRepository keeps the engine state of each live session. Entries expire after the TTL.
type GameRepository interface {
	Save(ctx context.Context, sessionID string, state engine.State) error
	GetByID(ctx context.Context, sessionID string) (*engine.State, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(sessionID string) string {
	return "game:" + sessionID
}

func (that *dbGame) Save(ctx context.Context, sessionID string, state engine.State) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(sessionID), stateJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, sessionID string) (*engine.State, error) {
	response, err := that.client.Get(ctx, gameKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var state engine.State
	if err = json.Unmarshal([]byte(response), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &state, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, gameKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
