package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/infrastructure/ratelimit"
)

func SetupRequestRouter(
	e *echo.Echo,
	requestHandler *handler.RequestHandler,
	notificationHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	limiter *ratelimit.RateLimiter,
) {
	requests := e.Group("/v1/requests")
	requests.Use(authMiddleware.Authenticate)

	requests.POST("", requestHandler.CreateRequest, middleware.RateLimit(limiter, "create_request"))
	requests.GET("/mine", requestHandler.ListMine)
	requests.GET("/incoming", requestHandler.ListIncoming)
	requests.GET("/:id", requestHandler.GetRequest)
	requests.PATCH("/:id/status", requestHandler.SetStatus)

	notifications := e.Group("/v1/notifications")
	notifications.Use(authMiddleware.Authenticate)
	notifications.GET("/unseen", notificationHandler.Unseen)
}
