package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gridgame/internal/usecase"
)

var ErrPayloadRequired = errors.New("payload is required")

func decodePayload(payload json.RawMessage, target any) error {
	if len(payload) == 0 {
		return ErrPayloadRequired
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, sessionID string, payload json.RawMessage) (*usecase.GameView, error) {
	var request NewGamePayload
	if len(payload) > 0 {
		if err := decodePayload(payload, &request); err != nil {
			return nil, err
		}
	}

	return that.uGame.NewGame(ctx, sessionID, request.Size)
}

func (that *Server) handleMove(ctx context.Context, sessionID string, payload json.RawMessage) (*usecase.GameView, error) {
	var request MovePayload
	if err := decodePayload(payload, &request); err != nil {
		return nil, err
	}

	return that.uGame.MakeMove(ctx, sessionID, request.Row, request.Col)
}

func (that *Server) handleUndo(ctx context.Context, sessionID string, _ json.RawMessage) (*usecase.GameView, error) {
	return that.uGame.Undo(ctx, sessionID)
}

func (that *Server) handleState(ctx context.Context, sessionID string, _ json.RawMessage) (*usecase.GameView, error) {
	return that.uGame.GetOrCreateGame(ctx, sessionID)
}

func (that *Server) handleEnd(ctx context.Context, sessionID string, _ json.RawMessage) (*usecase.GameView, error) {
	if err := that.uGame.EndGame(ctx, sessionID); err != nil {
		return nil, err
	}

	return nil, nil
}
