package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"clinic-console/cmd/console/di"
	"clinic-console/internal/adapter/gin/middleware"
	ginrouter "clinic-console/internal/adapter/gin/router"
	"clinic-console/internal/config"
)

// SetupHTTPServer creates and configures the HTTP server serving the
// console API
func SetupHTTPServer(cfg *config.Config, container *di.Container, l *zap.Logger) *http.Server {
	router := ginrouter.SetupRouter(
		container.AuthHandler,
		container.PublicHandler,
		container.AdminHandler,
		container.Session,
		middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           cfg.RateLimit.Enabled,
		},
		container.RedisClient,
		l,
	)

	addr := ":" + cfg.App.HTTPPort
	l.Info("console API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
