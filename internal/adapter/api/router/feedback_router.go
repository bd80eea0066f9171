package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/infrastructure/ratelimit"
)

func SetupFeedbackRouter(
	e *echo.Echo,
	feedbackHandler *handler.FeedbackHandler,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
	limiter *ratelimit.RateLimiter,
) {
	feedback := e.Group("/v1/feedback")
	feedback.Use(authMiddleware.Authenticate)
	feedback.POST("/:kind", feedbackHandler.Submit, middleware.RateLimit(limiter, "feedback"))

	admin := e.Group("/v1/admin/feedback")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/:kind", feedbackHandler.List)
	admin.PATCH("/:kind/:id/status", feedbackHandler.SetStatus)
}
