package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/usecase"
)

type uGame interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*usecase.GameView, error)
}

type gameHandler struct {
	logger *slog.Logger
	uGame  uGame
}

// ServeHTTP - GET /game?session=<id> returns the session's current game.
func (that *gameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session is required", http.StatusBadRequest)
		return
	}

	game, err := that.uGame.GetOrCreateGame(r.Context(), sessionID)
	if err != nil {
		that.logger.Error("failed to get game", "sessionID", sessionID, "error", err)

		status := http.StatusInternalServerError
		if errors.Is(err, apperror.ErrInvalidState) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(game); err != nil {
		that.logger.Error("failed to write game", "error", err)
	}
}
