package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"clinic-console/internal/domain/clinic"
)

// CollectionCache stores whole fetched collections so repeated dashboard
// reads don't refetch from the remote backend.
type CollectionCache interface {
	// GetRegistrants retrieves the cached registrant collection.
	// found is false on a cache miss.
	GetRegistrants(ctx context.Context) (users []clinic.Registrant, found bool, err error)

	// SetRegistrants stores the registrant collection with the configured TTL.
	SetRegistrants(ctx context.Context, users []clinic.Registrant) error

	// DeleteRegistrants drops the cached registrant collection.
	DeleteRegistrants(ctx context.Context) error

	// GetAppointments retrieves the cached appointment collection.
	GetAppointments(ctx context.Context) (appts []clinic.Appointment, found bool, err error)

	// SetAppointments stores the appointment collection with the configured TTL.
	SetAppointments(ctx context.Context, appts []clinic.Appointment) error

	// DeleteAppointments drops the cached appointment collection.
	DeleteAppointments(ctx context.Context) error
}

const (
	registrantsKey  = "collection:registrants"
	appointmentsKey = "collection:appointments"
)

// RedisCollectionCache implements CollectionCache using Redis as the
// backing store.
type RedisCollectionCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisCollectionCache creates a new Redis-backed collection cache.
func NewRedisCollectionCache(client *redis.Client, ttl time.Duration, log *zap.Logger) CollectionCache {
	return &RedisCollectionCache{client: client, ttl: ttl, log: log}
}

// GetRegistrants retrieves the registrant collection from Redis.
func (c *RedisCollectionCache) GetRegistrants(ctx context.Context) ([]clinic.Registrant, bool, error) {
	var users []clinic.Registrant
	found, err := c.get(ctx, registrantsKey, &users)
	return users, found, err
}

// SetRegistrants stores the registrant collection in Redis with TTL.
func (c *RedisCollectionCache) SetRegistrants(ctx context.Context, users []clinic.Registrant) error {
	return c.set(ctx, registrantsKey, users)
}

// DeleteRegistrants drops the registrant collection from Redis.
func (c *RedisCollectionCache) DeleteRegistrants(ctx context.Context) error {
	return c.delete(ctx, registrantsKey)
}

// GetAppointments retrieves the appointment collection from Redis.
func (c *RedisCollectionCache) GetAppointments(ctx context.Context) ([]clinic.Appointment, bool, error) {
	var appts []clinic.Appointment
	found, err := c.get(ctx, appointmentsKey, &appts)
	return appts, found, err
}

// SetAppointments stores the appointment collection in Redis with TTL.
func (c *RedisCollectionCache) SetAppointments(ctx context.Context, appts []clinic.Appointment) error {
	return c.set(ctx, appointmentsKey, appts)
}

// DeleteAppointments drops the appointment collection from Redis.
func (c *RedisCollectionCache) DeleteAppointments(ctx context.Context) error {
	return c.delete(ctx, appointmentsKey)
}

func (c *RedisCollectionCache) get(ctx context.Context, key string, out any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("cache miss", zap.String("key", key))
		return false, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.String("key", key), zap.Error(err))
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Error("failed to unmarshal cached collection", zap.String("key", key), zap.Error(err))
		return false, err
	}
	c.log.Debug("cache hit", zap.String("key", key))
	return true, nil
}

func (c *RedisCollectionCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Error("failed to marshal collection for cache", zap.String("key", key), zap.Error(err))
		return err
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.String("key", key), zap.Error(err))
		return err
	}
	c.log.Debug("cached collection", zap.String("key", key), zap.Duration("ttl", c.ttl))
	return nil
}

func (c *RedisCollectionCache) delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.String("key", key), zap.Error(err))
		return err
	}
	c.log.Debug("deleted from cache", zap.String("key", key))
	return nil
}
