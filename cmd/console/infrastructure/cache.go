package infrastructure

import (
	"fmt"

	"go.uber.org/zap"

	"clinic-console/internal/config"
	redisclient "clinic-console/pkg/redis"
)

// NewRedisClient connects the shared Redis handle used by the collection
// cache and the rate limiter.
func NewRedisClient(cfg *config.Config, l *zap.Logger) (*redisclient.Client, error) {
	rdb, err := redisclient.Connect(redisclient.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
