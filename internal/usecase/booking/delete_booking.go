package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) error {

	b, err := ownedBooking(ctx, uc.repo, bookingID, userID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  b.SalonID,
		UserID:   &userID,
		Action:   audit.ActionBookingDeleted,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"date": b.BookingDate, "time": b.BookingTime},
	})

	return nil
}
