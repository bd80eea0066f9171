package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/usecase"
	"localmarket/pkg/response"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) Unseen(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	ids, err := h.notificationUseCase.Unseen(c.Request().Context(), session.UserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"request_ids": ids,
		"count":       len(ids),
	})
}
