package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
)

// SetupWebSocketRouter registers /ws. The handler authenticates from the token
// query parameter itself.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws", wsHandler.HandleWebSocket)
}
