package review

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

const (
	MinRating      = 1
	MaxRating      = 5
	DefaultPerPage = 10
	MaxPerPage     = 100
)

var (
	ErrSalonNotFound = httperr.ErrNotFound("salon_not_found", "Salon not found")
	ErrInvalidRating = httperr.ErrInvalid("invalid_rating", "Rating must be an integer between 1 and 5")
)

// Summary is the aggregate shown next to any salon detail.
type Summary struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

// NewSummary rounds the mean to one decimal from its exact binary value, so
// an exact tie such as 2.25 goes to the even digit. With no reviews the
// average is 0.
func NewSummary(sum, count int64) Summary {
	if count <= 0 {
		return Summary{}
	}
	avg := float64(sum) / float64(count)
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(avg, 'f', 1, 64), 64)
	return Summary{
		AverageRating: rounded,
		TotalReviews:  count,
	}
}

func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

type Repository interface {
	SalonExists(ctx context.Context, salonID uint) (bool, error)

	// Totals returns the rating sum and review count of a salon.
	Totals(ctx context.Context, salonID uint) (sum int64, count int64, err error)

	// ListPage returns reviews newest first.
	ListPage(ctx context.Context, salonID uint, limit, offset int) ([]models.Review, error)

	Create(ctx context.Context, r *models.Review) error
}
