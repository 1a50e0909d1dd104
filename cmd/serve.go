package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"task-board.community/task-board/internal/auth"
	rediscache "task-board.community/task-board/internal/cache"
	config "task-board.community/task-board/internal/configs"
	httpapi "task-board.community/task-board/internal/http"
	"task-board.community/task-board/internal/metrics"
	repository "task-board.community/task-board/internal/repositories"
	"task-board.community/task-board/internal/services"
	"task-board.community/task-board/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the community task board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			logrus.Info(".env file not found, using environment variables")
		}

		cfg := config.Load()

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)
		logrus.SetFormatter(&logrus.JSONFormatter{})

		metrics.Register()

		db := config.New(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(db)
		userRepo := repository.NewUserRepository(db)
		commentRepo := repository.NewCommentRepository(db)

		var leaderboard rediscache.LeaderboardCache
		if cfg.RedisEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			leaderboard = rediscache.NewRedisLeaderboardCache(
				redisClient,
				cfg.LeaderboardCacheKey,
				time.Duration(cfg.LeaderboardTTLSeconds)*time.Second,
			)
		}

		images, err := storage.NewDiskImageStore(cfg.ImageDir, cfg.PublicBaseURL)
		if err != nil {
			return err
		}

		tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
		identity := auth.NewJWTProvider(tokens, userRepo)

		authService := services.NewAuthService(userRepo, tokens)
		taskService := services.NewTaskService(taskRepo, images, leaderboard, cfg.AwardPoints, cfg.FeedPageSize)
		userService := services.NewUserService(userRepo, taskRepo, leaderboard, cfg.LeaderboardSize)
		commentService := services.NewCommentService(commentRepo, taskRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(authService, taskService, userService, commentService, images)
		httpapi.Register(e, handler, identity, cfg.RateLimit, cfg.ImageDir)

		go func() {
			logrus.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				logrus.Infof("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logrus.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
