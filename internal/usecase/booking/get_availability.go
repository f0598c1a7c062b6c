package booking

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/metrics"
)

type AvailabilitySummary struct {
	TotalSlots     int `json:"total_slots"`
	AvailableSlots int `json:"available_slots"`
}

type AvailabilityResult struct {
	Date      string        `json:"date"`
	TimeSlots []domain.Slot `json:"time_slots"`

	// AvailableSlots lists only the bookable start times.
	AvailableSlots []string            `json:"available_slots"`
	Summary        AvailabilitySummary `json:"summary"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	salonID uint,
	rawDate string,
) (*AvailabilityResult, error) {

	rawDate = strings.TrimSpace(rawDate)
	if rawDate == "" {
		return nil, domain.ErrMissingDate
	}

	date, err := domain.ParseDate(rawDate)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetSalon(ctx, salonID); err != nil {
		return nil, err
	}

	intervals, err := uc.repo.ListOpenIntervals(ctx, salonID, domain.Weekday(date))
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedTimes(ctx, salonID, date.Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}

	slots, err := domain.GenerateSlots(intervals, domain.BookedSet(booked))
	if err != nil {
		return nil, err
	}

	metrics.IncAvailabilityQuery()

	available := make([]string, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			available = append(available, s.Time)
		}
	}

	return &AvailabilityResult{
		Date:           date.Format(domain.DateLayout),
		TimeSlots:      slots,
		AvailableSlots: available,
		Summary: AvailabilitySummary{
			TotalSlots:     len(slots),
			AvailableSlots: len(available),
		},
	}, nil
}
