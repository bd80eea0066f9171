package handler

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/usecase"
	"localmarket/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetMe(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.GetMe(c.Request().Context(), session)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return response.Error(c, err)
	}

	var input usecase.UpdateProfileInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), session, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
