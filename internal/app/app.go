package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Config struct {
	RedisAddr       string
	UpstreamBaseURL string
	UpstreamLimit   int
	JWTSecret       string
	KafkaBrokers    []string
	SessionTTL      time.Duration
}

// LoadConfigFromEnv reads configuration the same way the rest of the
// process does: plain environment variables with sensible defaults.
func LoadConfigFromEnv() Config {
	cfg := Config{
		RedisAddr:       envOr("REDIS_ADDR", "localhost:6379"),
		UpstreamBaseURL: envOr("UPSTREAM_BASE_URL", "https://dummyjson.com"),
		UpstreamLimit:   20,
		JWTSecret:       envOr("JWT_SECRET", "hrboard-dev-secret"),
		SessionTTL:      24 * time.Hour,
	}

	if v, err := strconv.Atoi(os.Getenv("UPSTREAM_LIMIT")); err == nil && v > 0 {
		cfg.UpstreamLimit = v
	}
	if raw := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); raw != "" {
		cfg.KafkaBrokers = strings.Split(raw, ",")
	}
	if v, err := time.ParseDuration(os.Getenv("SESSION_TTL")); err == nil && v > 0 {
		cfg.SessionTTL = v
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildApp connects infrastructure and registers every module's routes.
func BuildApp(router *gin.Engine, cfg Config) error {
	rdb, err := connectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	zap.L().Info("Redis connection established", zap.String("addr", cfg.RedisAddr))

	registerModules(router, rdb, cfg)

	return nil
}

func connectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err == nil {
			return rdb, nil
		}

		zap.L().Warn("Redis connect retry failed",
			zap.Int("attempt", i),
			zap.Int("max", maxRetries),
		)
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect redis at %s", addr)
}
