package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
)

func SetupSellerRouter(e *echo.Echo, sellerHandler *handler.SellerHandler, authMiddleware *middleware.AuthMiddleware) {
	// Public routes
	sellers := e.Group("/v1/sellers")
	sellers.GET("/nearby", sellerHandler.Nearby)
	sellers.GET("/by-user/:userId", sellerHandler.GetSellerByUser)
	sellers.GET("/:id", sellerHandler.GetSeller)
	sellers.GET("/:id/products", sellerHandler.ListProducts)

	// Owner routes
	owned := e.Group("/v1/sellers")
	owned.Use(authMiddleware.Authenticate)
	owned.POST("", sellerHandler.CreateSeller)
	owned.PUT("/:id", sellerHandler.UpdateSeller)
	owned.DELETE("/:id", sellerHandler.DeleteSeller)
}
