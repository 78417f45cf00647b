// Package admin implements the control-panel operations: the aggregated
// dashboard, registrant review, appointment triage, and offer/slider
// management.
package admin

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"clinic-console/internal/adapter/directory"
	"clinic-console/internal/backend"
	"clinic-console/internal/domain/clinic"
	"clinic-console/internal/report"
	"clinic-console/internal/validate"
	apperrors "clinic-console/pkg/errors"
)

// Usecase implements the business logic for the admin console.
type Usecase struct {
	api *backend.Client
	dir directory.Directory
	log *zap.Logger
	now func() time.Time
}

// New creates a new instance of Usecase with the provided API client,
// directory, and logger.
func New(api *backend.Client, dir directory.Directory, log *zap.Logger) *Usecase {
	return &Usecase{api: api, dir: dir, log: log, now: time.Now}
}

// Dashboard aggregates every statistic the control panel shows.
type Dashboard struct {
	Gender       report.GenderStats      `json:"genderStats"`
	Countries    report.CountryStats     `json:"countryStats"`
	Appointments report.AppointmentStats `json:"appointmentStats"`
	Offers       report.OfferStats       `json:"offerStats"`
	Users        clinic.UserStats        `json:"userStats"`
	SliderCount  int                     `json:"sliderCount"`
}

// Dashboard fetches every collection concurrently and derives the stats
// from the results. Any single fetch failure fails the whole dashboard.
func (uc *Usecase) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		registrants []clinic.Registrant
		appts       []clinic.Appointment
		offers      []clinic.Offer
		slides      []clinic.SliderImage
		userStats   *clinic.UserStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		registrants, err = uc.dir.Registrants(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		appts, err = uc.dir.Appointments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		offers, err = uc.api.AllOffers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		slides, err = uc.api.AllSliderImages(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		userStats, err = uc.api.UserStats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.log.Error("dashboard aggregation failed", zap.Error(err))
		return nil, err
	}

	d := &Dashboard{
		Gender:       report.Gender(registrants),
		Countries:    report.Country(registrants),
		Appointments: report.Appointments(appts),
		Offers:       report.Offers(offers),
		SliderCount:  len(slides),
	}
	if userStats != nil {
		d.Users = *userStats
	}
	uc.log.Debug("dashboard computed",
		zap.Int("registrants", len(registrants)),
		zap.Int("appointments", len(appts)),
		zap.Int("offers", len(offers)))
	return d, nil
}

// ListRegistrants returns the registrants whose signup time falls within
// the filter. The view is always re-derived from the full collection.
func (uc *Usecase) ListRegistrants(ctx context.Context, filter report.DateFilter) ([]clinic.Registrant, error) {
	users, err := uc.dir.Registrants(ctx)
	if err != nil {
		return nil, err
	}
	return report.FilterBySignup(users, filter, uc.now()), nil
}

// UpdateRegistrantStatus sets a registrant's account status and refreshes
// the cached collection.
func (uc *Usecase) UpdateRegistrantStatus(ctx context.Context, id, status string) error {
	if err := uc.api.UpdateUserStatus(ctx, id, status); err != nil {
		return err
	}
	uc.dir.InvalidateRegistrants(ctx)
	uc.log.Info("registrant status updated", zap.String("id", id), zap.String("status", status))
	return nil
}

// DeleteRegistrant removes a registrant and refreshes the cached collection.
func (uc *Usecase) DeleteRegistrant(ctx context.Context, id string) error {
	if err := uc.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	uc.dir.InvalidateRegistrants(ctx)
	uc.log.Info("registrant deleted", zap.String("id", id))
	return nil
}

// Appointments returns the full appointment collection.
func (uc *Usecase) Appointments(ctx context.Context) ([]clinic.Appointment, error) {
	return uc.dir.Appointments(ctx)
}

// SetAppointmentStatus moves an appointment to a new status and returns
// the refreshed collection.
func (uc *Usecase) SetAppointmentStatus(ctx context.Context, id, status string) ([]clinic.Appointment, error) {
	if !clinic.ValidAppointmentStatus(status) {
		return nil, apperrors.NewValidationError("Invalid appointment status: " + status)
	}
	if err := uc.api.UpdateAppointmentStatus(ctx, id, status); err != nil {
		return nil, err
	}
	uc.dir.InvalidateAppointments(ctx)
	uc.log.Info("appointment status updated", zap.String("id", id), zap.String("status", status))
	return uc.dir.Appointments(ctx)
}

// Offers returns the full offer catalog, active and inactive.
func (uc *Usecase) Offers(ctx context.Context) ([]clinic.Offer, error) {
	return uc.api.AllOffers(ctx)
}

// CreateOffer validates the form, creates the offer, and returns the
// refreshed catalog.
func (uc *Usecase) CreateOffer(ctx context.Context, form validate.OfferForm) ([]clinic.Offer, error) {
	if msgs := validate.Offer(form); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs...)
	}
	active := true
	price := form.Price
	_, err := uc.api.CreateOffer(ctx, backend.OfferPayload{
		Title:              form.Title,
		Description:        form.Description,
		Price:              &price,
		OriginalPrice:      form.OriginalPrice,
		Image:              form.Image,
		Category:           form.Category,
		Features:           form.Features,
		IsActive:           &active,
		TermsAndConditions: form.TermsAndConditions,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info("offer created", zap.String("title", form.Title))
	return uc.api.AllOffers(ctx)
}

// UpdateOffer applies a partial update and returns the refreshed catalog.
// Zero-valued payload fields are left untouched on the backend.
func (uc *Usecase) UpdateOffer(ctx context.Context, id string, payload backend.OfferPayload) ([]clinic.Offer, error) {
	if payload.Category != "" && !clinic.ValidOfferCategory(payload.Category) {
		return nil, apperrors.NewValidationError("Please select a valid category")
	}
	if payload.Price != nil && *payload.Price <= 0 {
		return nil, apperrors.NewValidationError("Please enter a valid price")
	}
	if err := uc.api.UpdateOffer(ctx, id, payload); err != nil {
		return nil, err
	}
	uc.log.Info("offer updated", zap.String("id", id))
	return uc.api.AllOffers(ctx)
}

// SetOfferActive toggles an offer's visibility on the public site.
func (uc *Usecase) SetOfferActive(ctx context.Context, id string, active bool) ([]clinic.Offer, error) {
	return uc.UpdateOffer(ctx, id, backend.OfferPayload{IsActive: &active})
}

// DeleteOffer removes an offer and returns the refreshed catalog.
func (uc *Usecase) DeleteOffer(ctx context.Context, id string) ([]clinic.Offer, error) {
	if err := uc.api.DeleteOffer(ctx, id); err != nil {
		return nil, err
	}
	uc.log.Info("offer deleted", zap.String("id", id))
	return uc.api.AllOffers(ctx)
}

// SliderImages returns every carousel entry, active and inactive.
func (uc *Usecase) SliderImages(ctx context.Context) ([]clinic.SliderImage, error) {
	return uc.api.AllSliderImages(ctx)
}

// CreateSliderImage validates the form and creates the entry. A zero
// display order is assigned the next free position.
func (uc *Usecase) CreateSliderImage(ctx context.Context, form validate.SliderForm) ([]clinic.SliderImage, error) {
	if msgs := validate.Slider(form); len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs...)
	}

	order := form.Order
	if order == 0 {
		existing, err := uc.api.AllSliderImages(ctx)
		if err != nil {
			return nil, err
		}
		order = validate.DefaultSliderOrder(len(existing))
	}

	active := true
	_, err := uc.api.CreateSliderImage(ctx, backend.SliderPayload{
		Title:       form.Title,
		Description: form.Description,
		Image:       form.Image,
		Link:        form.Link,
		Order:       &order,
		IsActive:    &active,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info("slider image created", zap.String("title", form.Title), zap.Int("order", order))
	return uc.api.AllSliderImages(ctx)
}

// UpdateSliderImage applies a partial update and returns the refreshed list.
func (uc *Usecase) UpdateSliderImage(ctx context.Context, id string, payload backend.SliderPayload) ([]clinic.SliderImage, error) {
	if payload.Order != nil && *payload.Order < 1 {
		return nil, apperrors.NewValidationError("Display order must be at least 1")
	}
	if err := uc.api.UpdateSliderImage(ctx, id, payload); err != nil {
		return nil, err
	}
	uc.log.Info("slider image updated", zap.String("id", id))
	return uc.api.AllSliderImages(ctx)
}

// DeleteSliderImage removes a carousel entry and returns the refreshed list.
func (uc *Usecase) DeleteSliderImage(ctx context.Context, id string) ([]clinic.SliderImage, error) {
	if err := uc.api.DeleteSliderImage(ctx, id); err != nil {
		return nil, err
	}
	uc.log.Info("slider image deleted", zap.String("id", id))
	return uc.api.AllSliderImages(ctx)
}
