package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/usecase"
	"localmarket/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// Rating range is checked by the use case so the client gets INVALID_RATING.
type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment" validate:"max=2000"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req createReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		ProductID:   c.Param("id"),
		BuyerID:     session.UserID,
		BuyerName:   session.Name(),
		BuyerAvatar: session.PhotoURL,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListByProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) ListMine(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	reviews, err := h.reviewUseCase.ListByBuyer(c.Request().Context(), session.UserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) Eligibility(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	eligibility, err := h.reviewUseCase.Eligibility(c.Request().Context(), session.UserID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, eligibility)
}
