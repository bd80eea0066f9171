package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/usecase"
	"localmarket/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) Toggle(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	productID := c.Param("productId")
	favorite, err := h.favoriteUseCase.Toggle(c.Request().Context(), session.UserID, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product_id":  productID,
		"is_favorite": favorite,
	})
}

func (h *FavoriteHandler) ListMine(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	ids, err := h.favoriteUseCase.ListByBuyer(c.Request().Context(), session.UserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product_ids": ids,
	})
}

func (h *FavoriteHandler) Status(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	productID := c.Param("productId")
	favorite, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), session.UserID, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product_id":  productID,
		"is_favorite": favorite,
	})
}

func (h *FavoriteHandler) Count(c echo.Context) error {
	productID := c.Param("id")
	count, err := h.favoriteUseCase.Count(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product_id": productID,
		"count":      count,
	})
}
