package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"clinic-console/internal/domain/clinic"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mr
}

func TestRedisCollectionCache_Registrants(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisCollectionCache(client, 5*time.Minute, zaptest.NewLogger(t))

	users := []clinic.Registrant{
		{ID: "u1", FirstName: "Sara", Gender: clinic.GenderFemale},
		{ID: "u2", FirstName: "Omar", Gender: clinic.GenderMale},
	}

	err := cache.SetRegistrants(context.Background(), users)
	require.NoError(t, err)

	// Verify data is in Redis under the collection key
	data, err := client.Get(context.Background(), "collection:registrants").Bytes()
	require.NoError(t, err)
	var stored []clinic.Registrant
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored, 2)

	got, found, err := cache.GetRegistrants(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, users, got)
}

func TestRedisCollectionCache_Miss(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisCollectionCache(client, 5*time.Minute, zaptest.NewLogger(t))

	users, found, err := cache.GetRegistrants(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, users)
}

func TestRedisCollectionCache_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisCollectionCache(client, 5*time.Minute, zaptest.NewLogger(t))

	require.NoError(t, cache.SetRegistrants(context.Background(), []clinic.Registrant{{ID: "u1"}}))
	require.NoError(t, cache.DeleteRegistrants(context.Background()))

	_, found, err := cache.GetRegistrants(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCollectionCache_TTLExpiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisCollectionCache(client, time.Minute, zaptest.NewLogger(t))

	require.NoError(t, cache.SetAppointments(context.Background(), []clinic.Appointment{{ID: "a1"}}))

	mr.FastForward(2 * time.Minute)

	_, found, err := cache.GetAppointments(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCollectionCache_Appointments(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisCollectionCache(client, 5*time.Minute, zaptest.NewLogger(t))

	appts := []clinic.Appointment{
		{ID: "a1", Status: clinic.AppointmentPending},
	}
	require.NoError(t, cache.SetAppointments(context.Background(), appts))

	got, found, err := cache.GetAppointments(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, appts, got)

	// The two collections are stored independently
	_, found, err = cache.GetRegistrants(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCollectionCache_CorruptEntry(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisCollectionCache(client, 5*time.Minute, zaptest.NewLogger(t))

	mr.Set("collection:registrants", "{not json")

	_, found, err := cache.GetRegistrants(context.Background())
	assert.Error(t, err)
	assert.False(t, found)
}
