package directory

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"clinic-console/internal/adapter/cache"
	"clinic-console/internal/domain/clinic"
)

// CachedDirectory implements Directory with caching support. It wraps the
// backend-facing directory and a cache implementation.
type CachedDirectory struct {
	upstream Directory
	cache    cache.CollectionCache
	log      *zap.Logger
	group    singleflight.Group
}

// NewCachedDirectory creates a new instance of CachedDirectory.
func NewCachedDirectory(upstream Directory, cache cache.CollectionCache, log *zap.Logger) Directory {
	return &CachedDirectory{
		upstream: upstream,
		cache:    cache,
		log:      log,
	}
}

// Registrants retrieves the registrant collection using Cache-Aside pattern.
func (d *CachedDirectory) Registrants(ctx context.Context) ([]clinic.Registrant, error) {
	// Try to get from cache first
	if d.cache != nil {
		users, found, err := d.cache.GetRegistrants(ctx)
		if err != nil {
			d.log.Warn("cache get error, falling back to backend", zap.Error(err))
		} else if found {
			return users, nil
		}
	}

	// Cache miss or cache disabled - use single-flight to prevent stampede
	result, err, _ := d.group.Do("registrants", func() (any, error) {
		// Double-check cache in case another request populated it while we were waiting
		if d.cache != nil {
			users, found, err := d.cache.GetRegistrants(ctx)
			if err == nil && found {
				return users, nil
			}
		}

		// Only one request hits the backend
		users, err := d.upstream.Registrants(ctx)
		if err != nil {
			return nil, err
		}

		// Store in cache for future requests
		if d.cache != nil {
			if err := d.cache.SetRegistrants(ctx, users); err != nil {
				d.log.Warn("failed to cache registrants", zap.Error(err))
			}
		}

		return users, nil
	})

	if err != nil {
		return nil, err
	}

	return result.([]clinic.Registrant), nil
}

// Appointments retrieves the appointment collection using Cache-Aside pattern.
func (d *CachedDirectory) Appointments(ctx context.Context) ([]clinic.Appointment, error) {
	if d.cache != nil {
		appts, found, err := d.cache.GetAppointments(ctx)
		if err != nil {
			d.log.Warn("cache get error, falling back to backend", zap.Error(err))
		} else if found {
			return appts, nil
		}
	}

	result, err, _ := d.group.Do("appointments", func() (any, error) {
		if d.cache != nil {
			appts, found, err := d.cache.GetAppointments(ctx)
			if err == nil && found {
				return appts, nil
			}
		}

		appts, err := d.upstream.Appointments(ctx)
		if err != nil {
			return nil, err
		}

		if d.cache != nil {
			if err := d.cache.SetAppointments(ctx, appts); err != nil {
				d.log.Warn("failed to cache appointments", zap.Error(err))
			}
		}

		return appts, nil
	})

	if err != nil {
		return nil, err
	}

	return result.([]clinic.Appointment), nil
}

// InvalidateRegistrants drops the cached registrant collection after a
// mutation so the next read refetches.
func (d *CachedDirectory) InvalidateRegistrants(ctx context.Context) {
	if d.cache == nil {
		return
	}
	if err := d.cache.DeleteRegistrants(ctx); err != nil {
		d.log.Warn("failed to invalidate registrant cache", zap.Error(err))
	}
	d.upstream.InvalidateRegistrants(ctx)
}

// InvalidateAppointments drops the cached appointment collection.
func (d *CachedDirectory) InvalidateAppointments(ctx context.Context) {
	if d.cache == nil {
		return
	}
	if err := d.cache.DeleteAppointments(ctx); err != nil {
		d.log.Warn("failed to invalidate appointment cache", zap.Error(err))
	}
	d.upstream.InvalidateAppointments(ctx)
}
