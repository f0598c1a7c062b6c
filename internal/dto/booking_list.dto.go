package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// BookingListDTO is the manager's view of a booking row.
type BookingListDTO struct {
	ID            uint      `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone *string   `json:"customer_phone"`
	ServiceID     uint      `json:"service_id"`
	BookingDate   string    `json:"booking_date"`
	BookingTime   string    `json:"booking_time"`
	Duration      int       `json:"duration"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func BookingList(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingListDTO{
			ID:            b.ID,
			CustomerName:  b.CustomerName,
			CustomerEmail: b.CustomerEmail,
			CustomerPhone: b.CustomerPhone,
			ServiceID:     b.ServiceID,
			BookingDate:   b.BookingDate,
			BookingTime:   b.BookingTime,
			Duration:      b.Duration,
			Status:        b.Status,
			CreatedAt:     b.CreatedAt,
		})
	}
	return out
}
