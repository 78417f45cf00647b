// Package redis owns the console's single Redis connection, shared by the
// collection cache and the rate limiter.
package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config is the subset of connection options the console tunes; everything
// else stays at the go-redis defaults.
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
}

// Client embeds redis.Client so the cache and rate limiter use the go-redis
// API directly.
type Client struct {
	*redis.Client
	log *zap.Logger
}

// Connect opens a pooled connection and pings it before handing it out.
// Cache reads fail open at runtime, but a Redis that is already down at
// boot is a deployment fault worth failing on.
func Connect(cfg Config, log *zap.Logger) (*Client, error) {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis at %s: %w", addr, err)
	}

	log.Info("collection cache connected",
		zap.String("addr", addr),
		zap.Int("db", cfg.DB),
	)

	return &Client{Client: rdb, log: log}, nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	c.log.Debug("closing redis connection")
	return c.Client.Close()
}
