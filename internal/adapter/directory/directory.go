// Package directory provides read access to the backend's registrant and
// appointment collections, with an optional caching layer on top.
package directory

import (
	"context"

	"go.uber.org/zap"

	"clinic-console/internal/backend"
	"clinic-console/internal/domain/clinic"
)

// Directory fetches the collections the admin console reports on.
type Directory interface {
	// Registrants fetches the full registrant collection.
	Registrants(ctx context.Context) ([]clinic.Registrant, error)

	// Appointments fetches the full appointment collection.
	Appointments(ctx context.Context) ([]clinic.Appointment, error)

	// InvalidateRegistrants drops any cached registrant collection so the
	// next read refetches.
	InvalidateRegistrants(ctx context.Context)

	// InvalidateAppointments drops any cached appointment collection.
	InvalidateAppointments(ctx context.Context)
}

// pageLimit is the page size used when draining the registrant list.
const pageLimit = 100

// BackendDirectory reads collections straight from the remote backend.
type BackendDirectory struct {
	client *backend.Client
	log    *zap.Logger
}

// NewBackendDirectory creates a directory backed directly by the API client.
func NewBackendDirectory(client *backend.Client, log *zap.Logger) *BackendDirectory {
	return &BackendDirectory{client: client, log: log}
}

// Registrants drains the paginated user listing into a single slice.
func (d *BackendDirectory) Registrants(ctx context.Context) ([]clinic.Registrant, error) {
	var all []clinic.Registrant
	for page := 1; ; page++ {
		users, pagination, err := d.client.ListUsers(ctx, page, pageLimit)
		if err != nil {
			return nil, err
		}
		all = append(all, users...)
		if pagination == nil || int64(page) >= pagination.TotalPages {
			break
		}
	}
	d.log.Debug("fetched registrants from backend", zap.Int("count", len(all)))
	return all, nil
}

// Appointments fetches the appointment collection.
func (d *BackendDirectory) Appointments(ctx context.Context) ([]clinic.Appointment, error) {
	appts, err := d.client.Appointments(ctx)
	if err != nil {
		return nil, err
	}
	d.log.Debug("fetched appointments from backend", zap.Int("count", len(appts)))
	return appts, nil
}

// InvalidateRegistrants is a no-op: there is nothing cached here.
func (d *BackendDirectory) InvalidateRegistrants(context.Context) {}

// InvalidateAppointments is a no-op: there is nothing cached here.
func (d *BackendDirectory) InvalidateAppointments(context.Context) {}
