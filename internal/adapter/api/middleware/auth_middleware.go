package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"localmarket/internal/domain/entity"
	"localmarket/internal/usecase"
	"localmarket/pkg/errors"
	"localmarket/pkg/response"
)

const (
	uidKey     = "uid"
	sessionKey = "session"
)

type AuthMiddleware struct {
	authClient usecase.FirebaseAuthClient
}

func NewAuthMiddleware(authClient usecase.FirebaseAuthClient) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		session, err := m.authClient.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		SetSession(c, *session)
		return next(c)
	}
}

// VerifyToken is used where no Authorization header can be sent, such as the
// WebSocket handshake.
func (m *AuthMiddleware) VerifyToken(ctx context.Context, token string) (*entity.Session, error) {
	session, err := m.authClient.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}
	return session, nil
}

func SetSession(c echo.Context, session entity.Session) {
	c.Set(uidKey, session.UserID)
	c.Set(sessionKey, session)
}

func SessionFrom(c echo.Context) (entity.Session, bool) {
	session, ok := c.Get(sessionKey).(entity.Session)
	return session, ok && session.UserID != ""
}
