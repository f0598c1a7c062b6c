package salon

import (
	"context"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type Repository interface {
	// -------- Directory --------
	List(
		ctx context.Context,
		f ListFilter,
	) ([]models.Salon, int64, error)

	Get(
		ctx context.Context,
		salonID uint,
	) (*models.Salon, error)

	ListOwned(
		ctx context.Context,
		ownerID uint,
	) ([]models.Salon, error)

	// Create inserts the salon and its initial opening hours together.
	Create(
		ctx context.Context,
		s *models.Salon,
		hours []models.OpeningInterval,
	) error

	Update(
		ctx context.Context,
		s *models.Salon,
	) error

	// -------- Catalogue / offerings --------
	ListCatalogue(
		ctx context.Context,
		bioDiamondOnly bool,
	) ([]models.Service, error)

	ServiceExists(
		ctx context.Context,
		serviceID uint,
	) (bool, error)

	ListOfferings(
		ctx context.Context,
		salonID uint,
	) ([]Offering, error)

	GetOffering(
		ctx context.Context,
		salonID uint,
		offeringID uint,
	) (*models.SalonService, error)

	CreateOffering(
		ctx context.Context,
		o *models.SalonService,
	) error

	UpdateOffering(
		ctx context.Context,
		o *models.SalonService,
	) error

	DeleteOffering(
		ctx context.Context,
		o *models.SalonService,
	) error

	// -------- Images --------
	ListImages(
		ctx context.Context,
		salonID uint,
	) ([]models.SalonImage, error)

	GetImage(
		ctx context.Context,
		salonID uint,
		imageID uint,
	) (*models.SalonImage, error)

	// CreateImage appends the image; the salon's first image becomes primary.
	CreateImage(
		ctx context.Context,
		img *models.SalonImage,
	) error

	// UpdateImage saves img and, when it is primary, demotes the others.
	UpdateImage(
		ctx context.Context,
		img *models.SalonImage,
	) error

	DeleteImage(
		ctx context.Context,
		img *models.SalonImage,
	) error
}
