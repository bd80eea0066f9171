package handler

import (
	"context"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
	ws "localmarket/internal/infrastructure/websocket"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/logger"
	"localmarket/pkg/response"
)

type WebSocketHandler struct {
	wsManager           *ws.Manager
	authMiddleware      *middleware.AuthMiddleware
	notificationUseCase *usecase.NotificationUseCase
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebSocketHandler(
	wsManager *ws.Manager,
	authMiddleware *middleware.AuthMiddleware,
	notificationUseCase *usecase.NotificationUseCase,
) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:           wsManager,
		authMiddleware:      authMiddleware,
		notificationUseCase: notificationUseCase,
	}
}

// HandleWebSocket authenticates with the token query parameter, since browsers
// cannot set headers on the handshake, then streams the buyer's request status
// changes until the connection closes.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Error(c, errors.Unauthorized("token query parameter is required", nil))
	}

	session, err := h.authMiddleware.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn().Err(err).Str("user_id", session.UserID).Msg("websocket upgrade failed")
		return nil
	}

	client := ws.NewClient(session.UserID, conn)
	if !h.wsManager.Register(client) {
		conn.Close()
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := h.notificationUseCase.Watch(ctx, session.UserID, client); err != nil {
			logger.Error().Err(err).Str("user_id", session.UserID).Msg("request watch ended")
		}
	}()

	go client.WritePump()
	go func() {
		defer cancel()
		client.ReadPump(h.wsManager)
	}()

	return nil
}
