package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/infrastructure/ratelimit"
)

func Setup(
	e *echo.Echo,
	h *handler.Handlers,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	limiter *ratelimit.RateLimiter,
) {
	SetupHealthRouter(e, h.Health)
	SetupWebSocketRouter(e, h.WebSocket)
	SetupUserRouter(e, h.User, authMiddleware)
	SetupSellerRouter(e, h.Seller, authMiddleware)
	SetupProductRouter(e, h.Product, h.Review, h.Favorite, authMiddleware)
	SetupRequestRouter(e, h.Request, h.Notification, authMiddleware, limiter)
	SetupFavoriteRouter(e, h.Favorite, authMiddleware)
	SetupFeedbackRouter(e, h.Feedback, authMiddleware, adminMiddleware, limiter)
}
