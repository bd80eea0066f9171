package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, favoriteHandler *handler.FavoriteHandler, authMiddleware *middleware.AuthMiddleware) {
	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)

	favorites.GET("", favoriteHandler.ListMine)
	favorites.POST("/:productId/toggle", favoriteHandler.Toggle)
	favorites.GET("/:productId/status", favoriteHandler.Status)
}
