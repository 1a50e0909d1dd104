package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"task-board.community/task-board/internal/auth"
	apperrors "task-board.community/task-board/internal/errors"
)

const userIDKey = "auth.user_id"

// RequireUser resolves the bearer token to an identity and rejects inactive
// accounts. Handlers behind it read the caller with UserID(c).
func RequireUser(provider auth.Provider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return echo.NewHTTPError(
					apperrors.ErrUnauthenticated.StatusCode,
					apperrors.ErrUnauthenticated.Message,
				)
			}

			identity, err := provider.Resolve(c.Request().Context(), strings.TrimPrefix(header, prefix))
			if err != nil {
				return echo.NewHTTPError(
					apperrors.StatusCode(err),
					err.Error(),
				)
			}

			if !identity.Active {
				return echo.NewHTTPError(
					apperrors.ErrInactiveUser.StatusCode,
					apperrors.ErrInactiveUser.Message,
				)
			}

			c.Set(userIDKey, identity.UserID)
			return next(c)
		}
	}
}

// UserID returns the authenticated caller's id. Zero means the middleware
// did not run, which is a routing bug.
func UserID(c echo.Context) uint {
	id, _ := c.Get(userIDKey).(uint)
	return id
}
