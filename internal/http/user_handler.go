package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "task-board.community/task-board/internal/http/middlewares"
)

func (h *Handler) Me(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) MyStats(c echo.Context) error {
	stats, err := h.userService.Stats(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) Leaderboard(c echo.Context) error {
	users, err := h.userService.Leaderboard(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, users)
}
