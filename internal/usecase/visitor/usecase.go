// Package visitor implements the public-facing operations: signup,
// appointment booking, and the read-only offer and slider views.
package visitor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"clinic-console/internal/backend"
	"clinic-console/internal/domain/clinic"
	"clinic-console/internal/validate"
	apperrors "clinic-console/pkg/errors"
)

// Usecase implements the business logic for the public site surface.
type Usecase struct {
	api *backend.Client
	log *zap.Logger
	now func() time.Time
}

// New creates a new instance of Usecase with the provided API client and logger.
func New(api *backend.Client, log *zap.Logger) *Usecase {
	return &Usecase{api: api, log: log, now: time.Now}
}

// Signup validates a registration form and submits it to the backend.
// Validation failures come back as a ValidationError carrying every
// violation.
func (uc *Usecase) Signup(ctx context.Context, form validate.SignupForm) (*clinic.Registrant, error) {
	if msgs := validate.Signup(form, uc.now()); len(msgs) > 0 {
		uc.log.Warn("signup validation failed", zap.Int("violations", len(msgs)))
		return nil, apperrors.NewValidationError(msgs...)
	}

	registrant, err := uc.api.Signup(ctx, backend.SignupPayload{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Phone:       form.Phone,
		CountryCode: form.CountryCode,
		DateOfBirth: form.DateOfBirth,
		Gender:      form.Gender,
		Address:     form.Address,
	})
	if err != nil {
		uc.log.Error("signup failed", zap.Error(err))
		return nil, err
	}

	uc.log.Info("visitor registered", zap.String("id", registrant.ID), zap.String("email", registrant.Email))
	return registrant, nil
}

// BookAppointment validates a booking form and submits it. New bookings
// always start out pending.
func (uc *Usecase) BookAppointment(ctx context.Context, form validate.AppointmentForm) (*clinic.Appointment, error) {
	if msgs := validate.Appointment(form); len(msgs) > 0 {
		uc.log.Warn("booking validation failed", zap.Int("violations", len(msgs)))
		return nil, apperrors.NewValidationError(msgs...)
	}

	appt, err := uc.api.BookAppointment(ctx, clinic.Appointment{
		PatientName:     form.PatientName,
		PatientEmail:    form.PatientEmail,
		PatientPhone:    form.PatientPhone,
		AppointmentDate: form.AppointmentDate,
		AppointmentTime: form.AppointmentTime,
		Doctor:          form.Doctor,
		Department:      form.Department,
		Reason:          form.Reason,
		Notes:           form.Notes,
		Status:          clinic.AppointmentPending,
	})
	if err != nil {
		uc.log.Error("booking failed", zap.Error(err))
		return nil, err
	}

	uc.log.Info("appointment booked", zap.String("id", appt.ID), zap.String("date", appt.AppointmentDate))
	return appt, nil
}

// ActiveOffers returns the offers currently visible on the public site.
func (uc *Usecase) ActiveOffers(ctx context.Context) ([]clinic.Offer, error) {
	return uc.api.Offers(ctx)
}

// ActiveSliderImages returns the homepage carousel entries currently live.
func (uc *Usecase) ActiveSliderImages(ctx context.Context) ([]clinic.SliderImage, error) {
	return uc.api.SliderImages(ctx)
}

// Countries lists the supported phone countries for the signup form.
func (uc *Usecase) Countries() []validate.Country {
	return validate.Countries()
}
