package router

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/handler"
	"localmarket/internal/adapter/api/middleware"
)

func SetupProductRouter(
	e *echo.Echo,
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	favoriteHandler *handler.FavoriteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Public routes
	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/:id/reviews", reviewHandler.ListByProduct)
	products.GET("/:id/favorites/count", favoriteHandler.Count)

	// Seller routes
	auth := e.Group("/v1/products")
	auth.Use(authMiddleware.Authenticate)
	auth.POST("", productHandler.CreateProduct)
	auth.PUT("/:id", productHandler.UpdateProduct)
	auth.PATCH("/:id/stock", productHandler.SetStock)
	auth.PATCH("/:id/quantity", productHandler.SetQuantity)
	auth.DELETE("/:id", productHandler.DeleteProduct)

	// Buyer review routes
	auth.POST("/:id/reviews", reviewHandler.CreateReview)
	auth.GET("/:id/reviews/eligibility", reviewHandler.Eligibility)

	reviews := e.Group("/v1/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.GET("/mine", reviewHandler.ListMine)
}
