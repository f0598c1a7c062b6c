package salon

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type OfferingInput struct {
	ServiceID uint
	Price     *float64
	Duration  *int
}

func validateTerms(price *float64, duration *int) error {
	if price != nil && *price < 0 {
		return domain.ErrInvalidPrice
	}
	if duration != nil && *duration <= 0 {
		return domain.ErrInvalidDuration
	}
	return nil
}

// Offerings groups the owner operations on a salon's service list.
type Offerings struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewOfferings(repo domain.Repository, audit *audit.Dispatcher) *Offerings {
	return &Offerings{repo: repo, audit: audit}
}

func (uc *Offerings) List(ctx context.Context, userID, salonID uint) ([]domain.Offering, error) {
	if _, err := ownedSalon(ctx, uc.repo, salonID, userID); err != nil {
		return nil, err
	}
	return uc.repo.ListOfferings(ctx, salonID)
}

func (uc *Offerings) Add(
	ctx context.Context,
	userID, salonID uint,
	in OfferingInput,
) (*models.SalonService, error) {

	switch {
	case in.ServiceID == 0:
		return nil, missingField("service_id")
	case in.Price == nil:
		return nil, missingField("price")
	case in.Duration == nil:
		return nil, missingField("duration")
	}
	if err := validateTerms(in.Price, in.Duration); err != nil {
		return nil, err
	}

	if _, err := ownedSalon(ctx, uc.repo, salonID, userID); err != nil {
		return nil, err
	}

	ok, err := uc.repo.ServiceExists(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrServiceNotFound
	}

	o := &models.SalonService{
		SalonID:   salonID,
		ServiceID: in.ServiceID,
		Price:     *in.Price,
		Duration:  *in.Duration,
	}
	if err := uc.repo.CreateOffering(ctx, o); err != nil {
		return nil, err
	}

	uc.dispatch(salonID, userID, audit.ActionOfferingCreated, o.ID)
	return o, nil
}

func (uc *Offerings) Update(
	ctx context.Context,
	userID, salonID, offeringID uint,
	in OfferingInput,
) (*models.SalonService, error) {

	if err := validateTerms(in.Price, in.Duration); err != nil {
		return nil, err
	}

	if _, err := ownedSalon(ctx, uc.repo, salonID, userID); err != nil {
		return nil, err
	}

	o, err := uc.repo.GetOffering(ctx, salonID, offeringID)
	if err != nil {
		return nil, err
	}

	if in.Price != nil {
		o.Price = *in.Price
	}
	if in.Duration != nil {
		o.Duration = *in.Duration
	}

	if err := uc.repo.UpdateOffering(ctx, o); err != nil {
		return nil, err
	}

	uc.dispatch(salonID, userID, audit.ActionOfferingUpdated, o.ID)
	return o, nil
}

func (uc *Offerings) Delete(ctx context.Context, userID, salonID, offeringID uint) error {
	if _, err := ownedSalon(ctx, uc.repo, salonID, userID); err != nil {
		return err
	}

	o, err := uc.repo.GetOffering(ctx, salonID, offeringID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteOffering(ctx, o); err != nil {
		return err
	}

	uc.dispatch(salonID, userID, audit.ActionOfferingDeleted, o.ID)
	return nil
}

func (uc *Offerings) dispatch(salonID, userID uint, action string, offeringID uint) {
	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   action,
		Entity:   "salon_service",
		EntityID: &offeringID,
	})
}
