package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gridgame/internal/pkg"
	"github.com/rocketscienceinc/gridgame/internal/usecase"
)

const (
	sessionCookie   = "user_session"
	sessionLifetime = 24 * time.Hour
	shutdownTimeout = 5 * time.Second
)

type uGame interface {
	NewGame(ctx context.Context, sessionID string, size int) (*usecase.GameView, error)
	GetOrCreateGame(ctx context.Context, sessionID string) (*usecase.GameView, error)
	MakeMove(ctx context.Context, sessionID string, row, col int) (*usecase.GameView, error)
	Undo(ctx context.Context, sessionID string) (*usecase.GameView, error)
	EndGame(ctx context.Context, sessionID string) error
}

type handlerFunc func(ctx context.Context, sessionID string, payload json.RawMessage) (*usecase.GameView, error)

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		actionConnect: server.handleState,
		actionNewGame: server.handleNewGame,
		actionMove:    server.handleMove,
		actionUndo:    server.handleUndo,
		actionState:   server.handleState,
		actionEnd:     server.handleEnd,
	}

	return server
}

// Handler returns the HTTP handler serving the /ws endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket and serves it until the client leaves.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	sessionID, header := that.sessionFromRequest(req)

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established", "sessionID", sessionID)

	if err = that.handleMessages(ctx, conn, sessionID); err != nil {
		log.Info("connection closed", "sessionID", sessionID, "reason", err)
	}
}

// handleMessages - processes messages from the client one at a time.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, sessionID string) error {
	for {
		_, body, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		response := that.process(ctx, sessionID, body)

		if err = conn.WriteJSON(response); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
}

// process turns one raw request into its response message.
func (that *Server) process(ctx context.Context, sessionID string, body []byte) Message {
	log := that.logger.With("method", "process", "sessionID", sessionID)

	var message Message
	if err := json.Unmarshal(body, &message); err != nil {
		log.Error("failed to unmarshal message", "error", err)
		return newMessage(actionError, ResponsePayload{Error: "malformed message"})
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Error("unknown action", "action", message.Action)
		return newMessage(message.Action, ResponsePayload{Error: "unknown action " + message.Action})
	}

	game, err := handler(ctx, sessionID, message.Payload)
	if err != nil {
		log.Debug("action rejected", "action", message.Action, "error", err)
		return newMessage(message.Action, ResponsePayload{Game: game, Error: err.Error()})
	}

	return newMessage(message.Action, ResponsePayload{Game: game})
}

// sessionFromRequest - reads the session cookie, minting a new one when absent.
func (that *Server) sessionFromRequest(req *http.Request) (string, http.Header) {
	cookie, err := req.Cookie(sessionCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	cookie = &http.Cookie{
		Name:     sessionCookie,
		Value:    pkg.GenerateNewSessionID(),
		Expires:  time.Now().Add(sessionLifetime),
		Path:     "/ws",
		HttpOnly: true,
	}

	that.logger.Info("session cookie not found, new one created", "cookie", cookie.Value)

	return cookie.Value, http.Header{"Set-Cookie": {cookie.String()}}
}

func newMessage(action string, payload ResponsePayload) Message {
	body, err := json.Marshal(payload)
	if err != nil {
		body = []byte(`{"error":"internal error"}`)
	}

	return Message{Action: action, Payload: body}
}
