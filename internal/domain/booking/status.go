package booking

import "github.com/BruksfildServices01/salon-booking/internal/httperr"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ParseStatus accepts only the three lifecycle states.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return st, nil
	}
	return "", httperr.ErrInvalid("invalid_status", "Invalid status")
}

// Occupies reports whether a booking in this state holds its slot.
func (s Status) Occupies() bool {
	return s == StatusConfirmed
}

func InitialStatus() Status {
	return StatusConfirmed
}
