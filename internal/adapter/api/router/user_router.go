package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, authMiddleware *middleware.AuthMiddleware) {
	me := e.Group("/v1/me")
	me.Use(authMiddleware.Authenticate)

	me.GET("", userHandler.GetMe)
	me.PUT("", userHandler.UpdateProfile)
}
