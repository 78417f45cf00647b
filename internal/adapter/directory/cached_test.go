package directory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"clinic-console/internal/adapter/cache"
	"clinic-console/internal/domain/clinic"
)

// fakeUpstream counts fetches so tests can observe cache behavior.
type fakeUpstream struct {
	mu               sync.Mutex
	registrants      []clinic.Registrant
	appointments     []clinic.Appointment
	registrantCalls  int
	appointmentCalls int
}

func (f *fakeUpstream) Registrants(ctx context.Context) ([]clinic.Registrant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registrantCalls++
	return f.registrants, nil
}

func (f *fakeUpstream) Appointments(ctx context.Context) ([]clinic.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointmentCalls++
	return f.appointments, nil
}

func (f *fakeUpstream) InvalidateRegistrants(context.Context)  {}
func (f *fakeUpstream) InvalidateAppointments(context.Context) {}

func (f *fakeUpstream) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registrantCalls, f.appointmentCalls
}

func setupCachedDirectory(t *testing.T, upstream *fakeUpstream) Directory {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := zaptest.NewLogger(t)
	collectionCache := cache.NewRedisCollectionCache(client, 5*time.Minute, log)
	return NewCachedDirectory(upstream, collectionCache, log)
}

func TestCachedDirectory_RegistrantsCacheAside(t *testing.T) {
	upstream := &fakeUpstream{registrants: []clinic.Registrant{{ID: "u1", FirstName: "Sara"}}}
	dir := setupCachedDirectory(t, upstream)

	// First read hits the upstream
	users, err := dir.Registrants(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)

	// Second read is served from cache
	users, err = dir.Registrants(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)

	regCalls, _ := upstream.calls()
	assert.Equal(t, 1, regCalls)
}

func TestCachedDirectory_InvalidateForcesRefetch(t *testing.T) {
	upstream := &fakeUpstream{registrants: []clinic.Registrant{{ID: "u1"}}}
	dir := setupCachedDirectory(t, upstream)

	_, err := dir.Registrants(context.Background())
	require.NoError(t, err)

	// Simulate a mutation: the upstream now has different data
	upstream.mu.Lock()
	upstream.registrants = []clinic.Registrant{{ID: "u1"}, {ID: "u2"}}
	upstream.mu.Unlock()

	// Without invalidation the stale view is served
	users, err := dir.Registrants(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)

	dir.InvalidateRegistrants(context.Background())

	users, err = dir.Registrants(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)

	regCalls, _ := upstream.calls()
	assert.Equal(t, 2, regCalls)
}

func TestCachedDirectory_AppointmentsIndependent(t *testing.T) {
	upstream := &fakeUpstream{
		registrants:  []clinic.Registrant{{ID: "u1"}},
		appointments: []clinic.Appointment{{ID: "a1", Status: clinic.AppointmentPending}},
	}
	dir := setupCachedDirectory(t, upstream)

	appts, err := dir.Appointments(context.Background())
	require.NoError(t, err)
	require.Len(t, appts, 1)

	// Invalidating registrants leaves the appointment cache alone
	dir.InvalidateRegistrants(context.Background())

	_, err = dir.Appointments(context.Background())
	require.NoError(t, err)

	_, apptCalls := upstream.calls()
	assert.Equal(t, 1, apptCalls)
}

func TestCachedDirectory_NilCachePassesThrough(t *testing.T) {
	upstream := &fakeUpstream{registrants: []clinic.Registrant{{ID: "u1"}}}
	dir := NewCachedDirectory(upstream, nil, zaptest.NewLogger(t))

	for i := 0; i < 3; i++ {
		_, err := dir.Registrants(context.Background())
		require.NoError(t, err)
	}

	// Every read reaches the upstream when caching is disabled
	regCalls, _ := upstream.calls()
	assert.Equal(t, 3, regCalls)

	// Invalidation is a no-op, not a panic
	dir.InvalidateRegistrants(context.Background())
	dir.InvalidateAppointments(context.Background())
}
