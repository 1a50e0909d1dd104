package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	PublicBaseURL          string
	DatabaseDSN            string
	JWTSecret              string
	TokenTTLMinutes        int
	AwardPoints            int
	FeedPageSize           int
	LeaderboardSize        int
	RedisAddr              string
	RedisEnabled           bool
	LeaderboardCacheKey    string
	LeaderboardTTLSeconds  int
	ImageDir               string
	RateLimit              int
	ShutdownTimeoutSeconds int
	LogLevel               string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		PublicBaseURL:          getEnv("PUBLIC_BASE_URL", fmt.Sprintf("http://%s:%s", appHost, appPort)),
		DatabaseDSN:            getEnv("DATABASE_DSN", "taskboard.db"),
		JWTSecret:              getEnv("SECRET_KEY", "a_very_secret_key_for_local_dev"),
		TokenTTLMinutes:        getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		AwardPoints:            getEnvAsInt("AWARD_POINTS", 50),
		FeedPageSize:           getEnvAsInt("FEED_PAGE_SIZE", 20),
		LeaderboardSize:        getEnvAsInt("LEADERBOARD_SIZE", 10),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisEnabled:           getEnvAsBool("REDIS_ENABLED", false),
		LeaderboardCacheKey:    getEnv("LEADERBOARD_CACHE_KEY", "leaderboard"),
		LeaderboardTTLSeconds:  getEnvAsInt("LEADERBOARD_TTL_SECONDS", 60),
		ImageDir:               getEnv("IMAGE_DIR", "uploads"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("SECRET_KEY must not be empty")
	}
	if cfg.TokenTTLMinutes <= 0 {
		log.Fatal("ACCESS_TOKEN_EXPIRE_MINUTES must be greater than 0")
	}
	if cfg.AwardPoints <= 0 {
		log.Fatal("AWARD_POINTS must be greater than 0")
	}
	if cfg.FeedPageSize <= 0 {
		log.Fatal("FEED_PAGE_SIZE must be greater than 0")
	}
	if cfg.LeaderboardSize <= 0 {
		log.Fatal("LEADERBOARD_SIZE must be greater than 0")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ImageDir == "" {
		log.Fatal("IMAGE_DIR must not be empty")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
