package websocket

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/gustydev/messenger-api/config"
	"github.com/gustydev/messenger-api/internal/presence"
	"github.com/gustydev/messenger-api/pkg/logger"
	"github.com/gustydev/messenger-api/pkg/utils"
)

// Handler upgrades the presence socket. The connection carries no protocol
// of its own here; its lifetime is the signal — open marks the user Online,
// close marks them Offline with a last-seen stamp.
type Handler struct {
	upgrader *websocket.Upgrader
	notifier *presence.Notifier
	logger   logger.Logger
	config   config.Config
}

func NewHandler(notifier *presence.Notifier, logger logger.Logger, config config.Config) *Handler {
	return &Handler{
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		notifier: notifier,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	userID, err := utils.ParseJWTToken(token, h.config)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	h.notifier.Connected(r.Context(), userID)

	go h.readLoop(conn, userID)
}

func (h *Handler) readLoop(conn *websocket.Conn, userID uuid.UUID) {
	defer func() {
		conn.Close()
		// request context is gone by now
		h.notifier.Disconnected(context.Background(), userID)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
