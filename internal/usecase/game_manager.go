package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gridgame/internal/apperror"
	"github.com/rocketscienceinc/gridgame/internal/config"
	"github.com/rocketscienceinc/gridgame/internal/engine"
	"github.com/rocketscienceinc/gridgame/internal/entity"
)

type gameRepo interface {
	Save(ctx context.Context, sessionID string, state engine.State) error
	GetByID(ctx context.Context, sessionID string) (*engine.State, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

// GameView is everything the presentation layer needs to render one session's game.
type GameView struct {
	SessionID     string        `json:"session_id"`
	Size          int           `json:"size"`
	Board         entity.Board  `json:"board"`
	Status        entity.Status `json:"status"`
	Winner        entity.Cell   `json:"winner,omitempty"`
	CurrentPlayer entity.Cell   `json:"current_player"`
	CanUndo       bool          `json:"can_undo"`
	Moves         int           `json:"moves"`
	RunLength     int           `json:"run_length,omitempty"`
}

// GameManager drives one engine per session, parking it in the repository between calls.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	settings config.Game

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, settings config.Game) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "gameManager"),
		gameRepo: gameRepo,
		settings: settings,
	}
}

// NewGame starts a fresh game for the session. A size of 0 picks the configured default.
func (that *GameManager) NewGame(ctx context.Context, sessionID string, size int) (*GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if size == 0 {
		size = that.settings.DefaultSize
	}

	game, err := that.startGame(ctx, sessionID, size)
	if err != nil {
		return nil, err
	}

	that.logger.Info("new game started", "sessionID", sessionID, "size", size)

	return newGameView(sessionID, game), nil
}

// GetOrCreateGame returns the session's game, starting a default one when there is none.
func (that *GameManager) GetOrCreateGame(ctx context.Context, sessionID string) (*GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.loadGame(ctx, sessionID)
	if errors.Is(err, apperror.ErrNotFound) {
		game, err = that.startGame(ctx, sessionID, that.settings.DefaultSize)
	}

	if err != nil {
		return nil, err
	}

	return newGameView(sessionID, game), nil
}

// MakeMove applies a move for the current player.
// On a rejected move the unchanged view is returned together with the reason.
func (that *GameManager) MakeMove(ctx context.Context, sessionID string, row, col int) (*GameView, error) {
	log := that.logger.With("method", "MakeMove", "sessionID", sessionID)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.loadGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	outcome, err := game.ApplyMove(row, col)
	if err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)
		return newGameView(sessionID, game), fmt.Errorf("failed to make move: %w", err)
	}

	if err = that.saveGame(ctx, sessionID, game); err != nil {
		return nil, err
	}

	if outcome.Status.IsTerminal() {
		log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner)
	}

	return newGameView(sessionID, game), nil
}

// Undo reverts the session's last move whatever the game status.
func (that *GameManager) Undo(ctx context.Context, sessionID string) (*GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.loadGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, _, err = game.Undo(); err != nil {
		return newGameView(sessionID, game), fmt.Errorf("failed to undo: %w", err)
	}

	if err = that.saveGame(ctx, sessionID, game); err != nil {
		return nil, err
	}

	return newGameView(sessionID, game), nil
}

// EndGame drops the session's game.
func (that *GameManager) EndGame(ctx context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game ended", "sessionID", sessionID)

	return nil
}

func (that *GameManager) startGame(ctx context.Context, sessionID string, size int) (*engine.Engine, error) {
	if size > that.settings.MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", apperror.ErrSizeTooLarge, size, that.settings.MaxSize)
	}

	game := engine.New(engine.WithRunLength(that.settings.RunLength))
	if _, err := game.Start(size); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	if err := that.saveGame(ctx, sessionID, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) loadGame(ctx context.Context, sessionID string) (*engine.Engine, error) {
	state, err := that.gameRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game, err := engine.Restore(*state)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	return game, nil
}

func (that *GameManager) saveGame(ctx context.Context, sessionID string, game *engine.Engine) error {
	if err := that.gameRepo.Save(ctx, sessionID, game.Snapshot()); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func newGameView(sessionID string, game *engine.Engine) *GameView {
	return &GameView{
		SessionID:     sessionID,
		Size:          game.Size(),
		Board:         game.Board(),
		Status:        game.Status(),
		Winner:        game.Winner(),
		CurrentPlayer: game.CurrentPlayer(),
		CanUndo:       game.CanUndo(),
		Moves:         game.HistoryLen(),
		RunLength:     game.RunLength(),
	}
}
