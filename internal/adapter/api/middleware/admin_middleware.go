package middleware

import (
	"github.com/labstack/echo/v4"

	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
	"localmarket/pkg/response"
)

type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, ok := SessionFrom(c)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), session.UserID)
		if err != nil {
			if errors.Is(err, errors.CodeNotFound) {
				return response.Error(c, errors.Forbidden("Admin privileges required", err))
			}
			return response.Error(c, errors.Internal("Failed to verify admin privileges", err))
		}

		if !user.IsAdmin() {
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}

		return next(c)
	}
}
