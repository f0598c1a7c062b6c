package booking

import (
	"context"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type ListSalonBookings struct {
	repo domain.Repository
}

func NewListSalonBookings(
	repo domain.Repository,
) *ListSalonBookings {
	return &ListSalonBookings{
		repo: repo,
	}
}

// Execute returns every booking of an owned salon, latest date first.
func (uc *ListSalonBookings) Execute(
	ctx context.Context,
	userID uint,
	salonID uint,
) (*models.Salon, []models.Booking, error) {

	salon, err := ownedSalon(ctx, uc.repo, salonID, userID)
	if err != nil {
		return nil, nil, err
	}

	bookings, err := uc.repo.ListSalonBookings(ctx, salonID)
	if err != nil {
		return nil, nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	return salon, bookings, nil
}
