package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"task-board.community/task-board/internal/auth"
	middleware "task-board.community/task-board/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, identity auth.Provider, rateLimitPerMinute int, imageDir string) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))
	e.Use(middleware.Metrics())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Community Task Board API is running"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Static("/static/images", imageDir)

	requireUser := middleware.RequireUser(identity)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/token", h.Login)

	posts := api.Group("/posts")
	posts.GET("", h.Feed)
	posts.GET("/:id", h.GetTask)
	posts.POST("", h.CreateTask, requireUser)
	posts.POST("/:id/submit-proof", h.SubmitProof, requireUser)
	posts.POST("/:id/approve", h.ApproveTask, requireUser)
	posts.DELETE("/:id", h.DeleteTask, requireUser)
	posts.POST("/:id/like", h.LikeTask, requireUser)
	posts.DELETE("/:id/like", h.UnlikeTask, requireUser)

	users := api.Group("/users")
	users.GET("/me", h.Me, requireUser)
	users.GET("/profile/stats", h.MyStats, requireUser)
	users.GET("/leaderboard", h.Leaderboard)

	comments := api.Group("/comments")
	comments.GET("/post/:task_id", h.ListComments)
	comments.POST("/post/:task_id", h.CreateComment, requireUser)
	comments.DELETE("/:id", h.DeleteComment, requireUser)

	api.POST("/images/upload", h.UploadImage, requireUser)
}
