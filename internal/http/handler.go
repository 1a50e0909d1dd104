package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "task-board.community/task-board/internal/errors"
	"task-board.community/task-board/internal/services"
	"task-board.community/task-board/internal/storage"
)

type Handler struct {
	authService    *services.AuthService
	taskService    *services.TaskService
	userService    *services.UserService
	commentService *services.CommentService
	images         storage.ImageStore
}

func NewHandler(
	authService *services.AuthService,
	taskService *services.TaskService,
	userService *services.UserService,
	commentService *services.CommentService,
	images storage.ImageStore,
) *Handler {
	return &Handler{
		authService:    authService,
		taskService:    taskService,
		userService:    userService,
		commentService: commentService,
		images:         images,
	}
}

// httpError maps service errors onto HTTP responses. Anything that is not a
// known Exception is an internal failure and stays opaque to the client.
func httpError(err error) error {
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

func parseQueryInt(c echo.Context, name string, defaultVal int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return v
}
