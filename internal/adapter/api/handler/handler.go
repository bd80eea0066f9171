package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/adapter/api/middleware"
	"localmarket/internal/domain/entity"
	ws "localmarket/internal/infrastructure/websocket"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
)

// Handlers groups every HTTP handler so routers can be wired from one value.
type Handlers struct {
	Health       *HealthHandler
	User         *UserHandler
	Seller       *SellerHandler
	Product      *ProductHandler
	Request      *RequestHandler
	Review       *ReviewHandler
	Favorite     *FavoriteHandler
	Feedback     *FeedbackHandler
	Notification *NotificationHandler
	WebSocket    *WebSocketHandler
}

type UseCases struct {
	User         *usecase.UserUseCase
	Seller       *usecase.SellerUseCase
	Product      *usecase.ProductUseCase
	Request      *usecase.RequestUseCase
	Review       *usecase.ReviewUseCase
	Favorite     *usecase.FavoriteUseCase
	Feedback     *usecase.FeedbackUseCase
	Notification *usecase.NotificationUseCase
}

func Setup(
	uc UseCases,
	checks map[string]HealthCheck,
	wsManager *ws.Manager,
	authMiddleware *middleware.AuthMiddleware,
) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(checks),
		User:         NewUserHandler(uc.User),
		Seller:       NewSellerHandler(uc.Seller, uc.Product),
		Product:      NewProductHandler(uc.Product),
		Request:      NewRequestHandler(uc.Request, uc.Notification),
		Review:       NewReviewHandler(uc.Review),
		Favorite:     NewFavoriteHandler(uc.Favorite),
		Feedback:     NewFeedbackHandler(uc.Feedback),
		Notification: NewNotificationHandler(uc.Notification),
		WebSocket:    NewWebSocketHandler(wsManager, authMiddleware, uc.Notification),
	}
}

func currentSession(c echo.Context) (entity.Session, error) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return entity.Session{}, errors.Unauthorized("Authentication required", nil)
	}
	return session, nil
}

// bindAndValidate binds the request into dst and runs struct validation.
func bindAndValidate(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return errors.BadRequest("Invalid request body", err)
	}
	return c.Validate(dst)
}
