package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Salon / catalogue
// --------------------------------------------------

func (r *BookingGormRepository) GetSalon(
	ctx context.Context,
	salonID uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSalonNotFound
		}
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) ServiceExists(
	ctx context.Context,
	serviceID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", serviceID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) GetOffering(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.SalonService, error) {

	var offering models.SalonService
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND service_id = ?", salonID, serviceID).
		First(&offering).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &offering, nil
}

// --------------------------------------------------
// Opening hours
// --------------------------------------------------

func (r *BookingGormRepository) ListOpenIntervals(
	ctx context.Context,
	salonID uint,
	weekday int,
) ([]models.OpeningInterval, error) {

	var intervals []models.OpeningInterval
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND weekday = ? AND is_available = ?", salonID, weekday, true).
		Order("start_time ASC, id ASC").
		Find(&intervals).Error; err != nil {
		return nil, err
	}
	return intervals, nil
}

func (r *BookingGormRepository) ListIntervals(
	ctx context.Context,
	salonID uint,
) ([]models.OpeningInterval, error) {

	var intervals []models.OpeningInterval
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("weekday ASC, start_time ASC").
		Find(&intervals).Error; err != nil {
		return nil, err
	}
	return intervals, nil
}

func (r *BookingGormRepository) ReplaceIntervals(
	ctx context.Context,
	salonID uint,
	intervals []models.OpeningInterval,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("salon_id = ?", salonID).
			Delete(&models.OpeningInterval{}).Error; err != nil {
			return err
		}

		if len(intervals) == 0 {
			return nil
		}
		return tx.Create(&intervals).Error
	})
}

// --------------------------------------------------
// Ledger
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	salonID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"salon_id = ? AND booking_date = ? AND status = ?",
			salonID, date, string(domain.StatusConfirmed),
		).
		Pluck("booking_time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *BookingGormRepository) CreateConfirmed(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"salon_id = ? AND booking_date = ? AND booking_time = ? AND status = ?",
				b.SalonID, b.BookingDate, b.BookingTime, string(domain.StatusConfirmed),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return domain.ErrSlotTaken
		}

		return tx.Create(b).Error
	})

	// A concurrent insert that passed the count above is stopped by
	// ux_bookings_confirmed_slot.
	if httperr.IsUniqueViolation(err) {
		return domain.ErrSlotTaken
	}
	return err
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", b.ID).
		Update("status", b.Status).Error
	if httperr.IsUniqueViolation(err) {
		return domain.ErrSlotTaken
	}
	return err
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	bookingID uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, bookingID).Error
}

func (r *BookingGormRepository) ListSalonBookings(
	ctx context.Context,
	salonID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("booking_date DESC, booking_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
