package booking

import (
	"fmt"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

var (
	ErrSalonNotFound    = httperr.ErrNotFound("salon_not_found", "Salon not found")
	ErrServiceNotFound  = httperr.ErrNotFound("service_not_found", "Service not found")
	ErrBookingNotFound  = httperr.ErrNotFound("booking_not_found", "Booking not found")
	ErrNotOwner         = httperr.ErrForbidden("access_denied", "Access denied")
	ErrSlotTaken        = httperr.ErrConflict("slot_already_booked", "Time slot already booked")
	ErrInvalidDate      = httperr.ErrInvalid("invalid_date", "Invalid date format. Use YYYY-MM-DD")
	ErrInvalidDateTime  = httperr.ErrInvalid("invalid_date_or_time", "Invalid date or time format")
	ErrMissingDate      = httperr.ErrInvalid("missing_date", "Date parameter required")
	ErrInvalidEmail     = httperr.ErrInvalid("invalid_email", "Invalid customer email")
	ErrOfferingExists   = httperr.ErrConflict("service_already_offered", "Service already exists for this salon")
	ErrOfferingNotFound = httperr.ErrNotFound("offering_not_found", "Service not found")
)

func ErrMissingField(field string) error {
	return httperr.ErrInvalid("missing_field", fmt.Sprintf("Missing required field: %s", field))
}

// ErrInvalidWeekdayHours names the weekday whose opening hours were rejected.
func ErrInvalidWeekdayHours(weekday string) error {
	return httperr.ErrInvalid("invalid_time_format", fmt.Sprintf("Invalid time format for day %s", weekday))
}
