package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
	rawStatus string,
) (*models.Booking, error) {

	rawStatus = strings.TrimSpace(rawStatus)
	if rawStatus == "" {
		return nil, httperr.ErrInvalid("missing_status", "Status is required")
	}

	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	b, err := ownedBooking(ctx, uc.repo, bookingID, userID)
	if err != nil {
		return nil, err
	}

	previous := b.Status
	if !domain.ChangeStatus(b, next) {
		return b, nil
	}

	if err := uc.repo.UpdateStatus(ctx, b); err != nil {
		b.Status = previous
		return nil, err
	}

	metrics.IncBookingStatusChange(string(next))

	uc.audit.Dispatch(audit.Event{
		SalonID:  b.SalonID,
		UserID:   &userID,
		Action:   audit.ActionBookingStatusChanged,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"from": previous, "to": b.Status},
	})

	return b, nil
}
