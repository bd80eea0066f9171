package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/domain/entity"
	"localmarket/internal/usecase"
	"localmarket/pkg/logger"
	"localmarket/pkg/response"
)

type RequestHandler struct {
	requestUseCase      *usecase.RequestUseCase
	notificationUseCase *usecase.NotificationUseCase
}

func NewRequestHandler(requestUseCase *usecase.RequestUseCase, notificationUseCase *usecase.NotificationUseCase) *RequestHandler {
	return &RequestHandler{
		requestUseCase:      requestUseCase,
		notificationUseCase: notificationUseCase,
	}
}

type setRequestStatusRequest struct {
	Status entity.RequestStatus `json:"status" validate:"required,oneof=approved rejected"`
}

func (h *RequestHandler) CreateRequest(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var input usecase.CreateRequestInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.Error(c, err)
	}

	request, err := h.requestUseCase.CreateRequest(c.Request().Context(), session, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

// ListMine returns the buyer's requests and marks their notifications as seen.
func (h *RequestHandler) ListMine(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	requests, err := h.requestUseCase.ListByBuyer(c.Request().Context(), session, entity.RequestStatus(c.QueryParam("status")))
	if err != nil {
		return response.Error(c, err)
	}

	if h.notificationUseCase != nil {
		if err := h.notificationUseCase.MarkSeen(c.Request().Context(), session.UserID); err != nil {
			logger.Warn().Err(err).Str("user_id", session.UserID).Msg("failed to clear notifications")
		}
	}

	return response.Success(c, requests)
}

func (h *RequestHandler) ListIncoming(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	requests, err := h.requestUseCase.ListBySeller(c.Request().Context(), session, entity.RequestStatus(c.QueryParam("status")))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, requests)
}

func (h *RequestHandler) GetRequest(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	request, err := h.requestUseCase.GetRequest(c.Request().Context(), session, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *RequestHandler) SetStatus(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req setRequestStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.requestUseCase.SetStatus(c.Request().Context(), session, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}
