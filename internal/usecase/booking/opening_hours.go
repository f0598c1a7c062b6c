package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
)

// ======================================================
// GET
// ======================================================

type GetOpeningHours struct {
	repo domain.Repository
}

func NewGetOpeningHours(repo domain.Repository) *GetOpeningHours {
	return &GetOpeningHours{repo: repo}
}

func (uc *GetOpeningHours) Execute(
	ctx context.Context,
	userID uint,
	salonID uint,
) (map[int]domain.DayHours, error) {

	if _, err := ownedSalon(ctx, uc.repo, salonID, userID); err != nil {
		return nil, err
	}

	intervals, err := uc.repo.ListIntervals(ctx, salonID)
	if err != nil {
		return nil, err
	}

	return domain.Summarize(intervals), nil
}

// ======================================================
// SET
// ======================================================

type SetOpeningHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetOpeningHours(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetOpeningHours {
	return &SetOpeningHours{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the whole week before touching storage, then swaps the
// salon's template in one transaction. A rejected week leaves the stored
// hours untouched.
func (uc *SetOpeningHours) Execute(
	ctx context.Context,
	userID uint,
	salonID uint,
	days map[string]domain.DayHours,
) error {

	if _, err := ownedSalon(ctx, uc.repo, salonID, userID); err != nil {
		return err
	}

	staged, err := domain.StageOpeningHours(salonID, days)
	if err != nil {
		return err
	}

	if err := uc.repo.ReplaceIntervals(ctx, salonID, staged); err != nil {
		return err
	}

	openDays := make([]int, 0, len(staged))
	for _, iv := range staged {
		openDays = append(openDays, iv.Weekday)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   audit.ActionOpeningHoursUpdated,
		Entity:   "opening_hours",
		Metadata: map[string]any{"open_days": openDays},
	})

	return nil
}
