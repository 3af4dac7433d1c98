package middleware

import (
	"github.com/labstack/echo/v4"

	"starmarket/internal/domain/repository"
	"starmarket/pkg/errors"
	"starmarket/pkg/response"
)

// SessionMiddleware resolves the store's persisted current-user pointer.
// There are no tokens: the world is a single signed-in "tab".
type SessionMiddleware struct {
	sessions repository.SessionRepository
}

func NewSessionMiddleware(sessions repository.SessionRepository) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.sessions.Current(c.Request().Context())
		if err != nil {
			return response.Error(c, errors.Internal("Failed to resolve session", err))
		}
		if user == nil {
			return response.Error(c, errors.Unauthorized("Sign in first", nil))
		}

		c.Set("uid", user.ID)
		c.Set("currentUser", user)
		return next(c)
	}
}
