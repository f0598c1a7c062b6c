package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SalonID   uint
	ServiceID uint

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string

	BookingDate string
	BookingTime string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	b, err := uc.admit(ctx, in)
	switch kind, _ := httperr.KindOf(err); {
	case err == nil:
		metrics.IncBookingAttempt(metrics.ResultCreated)
	case errors.Is(err, domain.ErrSlotTaken):
		metrics.IncBookingAttempt(metrics.ResultConflict)
	case kind == httperr.KindInvalid || kind == httperr.KindNotFound:
		metrics.IncBookingAttempt(metrics.ResultInvalid)
	default:
		metrics.IncBookingAttempt(metrics.ResultError)
	}
	return b, err
}

func (uc *CreateBooking) admit(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Required fields and formats
	// --------------------------------------------------
	name := strings.TrimSpace(in.CustomerName)
	email := validators.NormalizeEmail(in.CustomerEmail)

	switch {
	case in.SalonID == 0:
		return nil, domain.ErrMissingField("salon_id")
	case in.ServiceID == 0:
		return nil, domain.ErrMissingField("service_id")
	case name == "":
		return nil, domain.ErrMissingField("customer_name")
	case email == "":
		return nil, domain.ErrMissingField("customer_email")
	case strings.TrimSpace(in.BookingDate) == "":
		return nil, domain.ErrMissingField("booking_date")
	case strings.TrimSpace(in.BookingTime) == "":
		return nil, domain.ErrMissingField("booking_time")
	}

	if !validators.IsEmailSyntaxValid(email) {
		return nil, domain.ErrInvalidEmail
	}

	date, err := domain.ParseDate(strings.TrimSpace(in.BookingDate))
	if err != nil {
		return nil, domain.ErrInvalidDateTime
	}
	clock, err := domain.ParseClock(strings.TrimSpace(in.BookingTime))
	if err != nil {
		return nil, domain.ErrInvalidDateTime
	}

	// --------------------------------------------------
	// 2. Salon and service
	// --------------------------------------------------
	if _, err := uc.repo.GetSalon(ctx, in.SalonID); err != nil {
		return nil, err
	}

	ok, err := uc.repo.ServiceExists(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrServiceNotFound
	}

	// --------------------------------------------------
	// 3. Duration from the salon's offering
	// --------------------------------------------------
	duration := domain.DefaultDurationMinutes
	offering, err := uc.repo.GetOffering(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if offering != nil && offering.Duration > 0 {
		duration = offering.Duration
	}

	// --------------------------------------------------
	// 4. Admission (check + insert in one transaction)
	// --------------------------------------------------
	var phone *string
	if in.CustomerPhone != nil {
		if p := strings.TrimSpace(*in.CustomerPhone); p != "" {
			phone = &p
		}
	}

	b := &models.Booking{
		SalonID:       in.SalonID,
		ServiceID:     in.ServiceID,
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		BookingDate:   date.Format(domain.DateLayout),
		BookingTime:   clock,
		Duration:      duration,
		Status:        string(domain.InitialStatus()),
		CreatedAt:     uc.now(),
	}

	if err := uc.repo.CreateConfirmed(ctx, b); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			uc.audit.Dispatch(audit.Event{
				SalonID:  in.SalonID,
				Action:   audit.ActionBookingConflict,
				Entity:   "booking",
				Metadata: map[string]string{"date": b.BookingDate, "time": b.BookingTime},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
