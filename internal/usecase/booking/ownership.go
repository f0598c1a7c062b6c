package booking

import (
	"context"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ownedSalon loads the salon and fails with ErrNotOwner when userID does not
// own it.
func ownedSalon(
	ctx context.Context,
	repo domain.Repository,
	salonID uint,
	userID uint,
) (*models.Salon, error) {

	salon, err := repo.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if !salon.OwnedBy(userID) {
		return nil, domain.ErrNotOwner
	}
	return salon, nil
}

// ownedBooking loads the booking and checks its salon belongs to userID.
func ownedBooking(
	ctx context.Context,
	repo domain.Repository,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	b, err := repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, err := ownedSalon(ctx, repo, b.SalonID, userID); err != nil {
		return nil, err
	}
	return b, nil
}
