package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-board.community/task-board/internal/data_models"
	middleware "task-board.community/task-board/internal/http/middlewares"
	"task-board.community/task-board/internal/http/validators"
)

func (h *Handler) ListComments(c echo.Context) error {
	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListForTask(c.Request().Context(), taskID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, comments)
}

func (h *Handler) CreateComment(c echo.Context) error {
	taskID, err := parseIDParam(c, "task_id")
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.Struct(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Create(c.Request().Context(), taskID, middleware.UserID(c), req.Content)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

func (h *Handler) DeleteComment(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted successfully"})
}
