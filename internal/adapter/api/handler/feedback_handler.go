package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/domain/entity"
	"localmarket/internal/usecase"
	"localmarket/pkg/response"
	"localmarket/pkg/utils"
)

type FeedbackHandler struct {
	feedbackUseCase *usecase.FeedbackUseCase
}

func NewFeedbackHandler(feedbackUseCase *usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUseCase: feedbackUseCase,
	}
}

type setFeedbackStatusRequest struct {
	Status entity.FeedbackStatus `json:"status" validate:"required,oneof=open in_review resolved dismissed"`
}

func (h *FeedbackHandler) Submit(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var input usecase.SubmitFeedbackInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.Error(c, err)
	}

	kind := entity.FeedbackKind(c.Param("kind"))
	feedback, err := h.feedbackUseCase.Submit(c.Request().Context(), session, kind, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, feedback)
}

func (h *FeedbackHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.feedbackUseCase.List(
		c.Request().Context(),
		entity.FeedbackKind(c.Param("kind")),
		entity.FeedbackStatus(c.QueryParam("status")),
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *FeedbackHandler) SetStatus(c echo.Context) error {
	var req setFeedbackStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	feedback, err := h.feedbackUseCase.SetStatus(
		c.Request().Context(),
		entity.FeedbackKind(c.Param("kind")),
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, feedback)
}
