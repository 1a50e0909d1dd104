package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-board.community/task-board/internal/data_models"
	middleware "task-board.community/task-board/internal/http/middlewares"
	"task-board.community/task-board/internal/http/validators"
	"task-board.community/task-board/internal/services"
)

func (h *Handler) Feed(c echo.Context) error {
	offset := parseQueryInt(c, "skip", 0)
	limit := parseQueryInt(c, "limit", 0)

	tasks, err := h.taskService.Feed(c.Request().Context(), offset, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.Struct(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), middleware.UserID(c), services.CreateTaskInput{
		ImageURL:      req.ImageURL,
		ImagePublicID: req.ImagePublicID,
		Caption:       req.Caption,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) SubmitProof(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SubmitProofRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.Struct(&req); err != nil {
		return err
	}

	if err := h.taskService.SubmitProof(c.Request().Context(), id, middleware.UserID(c), req.ProofImageURL); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Proof submitted! Waiting for author approval.",
	})
}

func (h *Handler) ApproveTask(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	awarded, err := h.taskService.Approve(c.Request().Context(), id, middleware.UserID(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":        "Task approved! Points awarded to the volunteer.",
		"points_awarded": awarded,
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted"})
}

func (h *Handler) LikeTask(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.Like(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Task liked"})
}

func (h *Handler) UnlikeTask(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.Unlike(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Like removed"})
}
