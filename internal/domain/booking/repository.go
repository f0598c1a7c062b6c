package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Repository interface {
	// -------- Salon / catalogue --------
	GetSalon(
		ctx context.Context,
		salonID uint,
	) (*models.Salon, error)

	ServiceExists(
		ctx context.Context,
		serviceID uint,
	) (bool, error)

	// GetOffering returns nil without error when the salon does not offer
	// the service.
	GetOffering(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.SalonService, error)

	// -------- Opening hours --------
	ListOpenIntervals(
		ctx context.Context,
		salonID uint,
		weekday int,
	) ([]models.OpeningInterval, error)

	ListIntervals(
		ctx context.Context,
		salonID uint,
	) ([]models.OpeningInterval, error)

	// ReplaceIntervals swaps the salon's whole template in one transaction.
	ReplaceIntervals(
		ctx context.Context,
		salonID uint,
		intervals []models.OpeningInterval,
	) error

	// -------- Ledger --------
	ListBookedTimes(
		ctx context.Context,
		salonID uint,
		date string,
	) ([]string, error)

	// CreateConfirmed checks the slot and inserts in one transaction and
	// returns ErrSlotTaken when a confirmed booking already holds it.
	CreateConfirmed(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	// UpdateStatus returns ErrSlotTaken when re-confirming collides with
	// another confirmed booking.
	UpdateStatus(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		bookingID uint,
	) error

	ListSalonBookings(
		ctx context.Context,
		salonID uint,
	) ([]models.Booking, error)
}
