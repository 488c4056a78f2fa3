package app

import (
	"context"

	"hrboard/internal/analytics"
	"hrboard/internal/auth"
	"hrboard/internal/bookmark"
	"hrboard/internal/dashboard"
	"hrboard/internal/employee"
	"hrboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	rdb *redis.Client,
	cfg Config,
) {
	// --- Infrastructure ---
	upstream := employee.NewClient(cfg.UpstreamBaseURL)
	enricher := employee.NewEnricher(nil)
	bookmarkStore := bookmark.NewRedisStore(rdb)

	publisher := employee.NewNopPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		publisher = employee.NewKafkaPublisher(cfg.KafkaBrokers)
		zap.L().Info("employee event publisher enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	// --- Services ---
	employeeService := employee.NewService(upstream, enricher, rdb, publisher, cfg.UpstreamLimit)
	bookmarkService := bookmark.NewService(context.Background(), bookmarkStore)
	authService := auth.NewService(rdb, cfg.JWTSecret, cfg.SessionTTL)
	viewRegistry := dashboard.NewRegistry()

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	bookmarkHandler := bookmark.NewHandler(bookmarkService, employeeService)
	analyticsHandler := analytics.NewHandler(employeeService, bookmarkService)
	dashboardHandler := dashboard.NewHandler(viewRegistry, employeeService)

	gate := auth.Gate(authService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(20, 40))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, gate)
		employee.RegisterRoutes(api, employeeHandler, gate)
		bookmark.RegisterRoutes(api, bookmarkHandler, gate)
		analytics.RegisterRoutes(api, analyticsHandler, gate)
		dashboard.RegisterRoutes(api, dashboardHandler, gate)
	}
}
