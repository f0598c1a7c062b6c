package salon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/imaging"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/storage"
)

var (
	ErrStorageDisabled = httperr.ErrUnavailable("storage_disabled", "Image storage is not configured")
	ErrImageTooLarge   = httperr.ErrInvalid("image_too_large", "Image exceeds the 10 MB upload limit")
	ErrImageFormat     = httperr.ErrInvalid("unsupported_image", "Upload a JPEG, PNG, GIF or WebP image")
)

// Images manages a salon's photo gallery. A nil store disables uploads but
// listing and editing still work.
type Images struct {
	repo  domain.Repository
	store storage.ObjectStore
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewImages(
	repo domain.Repository,
	store storage.ObjectStore,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *Images {
	return &Images{repo: repo, store: store, audit: audit, log: log}
}

// List is public: it only requires the salon to exist.
func (uc *Images) List(ctx context.Context, salonID uint) ([]models.SalonImage, error) {
	if _, err := uc.repo.Get(ctx, salonID); err != nil {
		return nil, err
	}

	images, err := uc.repo.ListImages(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []models.SalonImage{}
	}
	return images, nil
}

func (uc *Images) Upload(
	ctx context.Context,
	userID, salonID uint,
	raw []byte,
	alt string,
) (*models.SalonImage, error) {

	if uc.store == nil {
		return nil, ErrStorageDisabled
	}

	if _, err := ownedSalon(ctx, uc.repo, salonID, userID); err != nil {
		return nil, err
	}

	encoded, err := imaging.ToWebP(raw)
	switch {
	case errors.Is(err, imaging.ErrTooLarge):
		return nil, ErrImageTooLarge
	case errors.Is(err, imaging.ErrUnsupported):
		return nil, ErrImageFormat
	case err != nil:
		return nil, err
	}

	key := fmt.Sprintf("salons/%d/%s.webp", salonID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, imaging.ContentType, encoded)
	if err != nil {
		return nil, err
	}

	img := &models.SalonImage{
		SalonID:   salonID,
		ImageURL:  url,
		ObjectKey: key,
		ImageAlt:  strings.TrimSpace(alt),
	}
	if err := uc.repo.CreateImage(ctx, img); err != nil {
		// The row never landed; drop the orphaned object.
		if delErr := uc.store.Delete(ctx, key); delErr != nil {
			uc.log.Warn().Err(delErr).Str("key", key).Msg("orphaned image object")
		}
		return nil, err
	}

	uc.dispatch(salonID, userID, audit.ActionImageUploaded, img.ID)
	return img, nil
}

func (uc *Images) Update(
	ctx context.Context,
	userID, salonID, imageID uint,
	in domain.ImageUpdate,
) (*models.SalonImage, error) {

	if _, err := ownedSalon(ctx, uc.repo, salonID, userID); err != nil {
		return nil, err
	}

	img, err := uc.repo.GetImage(ctx, salonID, imageID)
	if err != nil {
		return nil, err
	}

	in.Apply(img)

	if err := uc.repo.UpdateImage(ctx, img); err != nil {
		return nil, err
	}

	uc.dispatch(salonID, userID, audit.ActionImageUpdated, img.ID)
	return img, nil
}

func (uc *Images) Delete(ctx context.Context, userID, salonID, imageID uint) error {
	if _, err := ownedSalon(ctx, uc.repo, salonID, userID); err != nil {
		return err
	}

	img, err := uc.repo.GetImage(ctx, salonID, imageID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteImage(ctx, img); err != nil {
		return err
	}

	// The row is gone; a stale object only costs storage.
	if uc.store != nil && img.ObjectKey != "" {
		if err := uc.store.Delete(ctx, img.ObjectKey); err != nil {
			uc.log.Warn().Err(err).Str("key", img.ObjectKey).Msg("failed to delete image object")
		}
	}

	uc.dispatch(salonID, userID, audit.ActionImageDeleted, img.ID)
	return nil
}

func (uc *Images) dispatch(salonID, userID uint, action string, imageID uint) {
	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   action,
		Entity:   "salon_image",
		EntityID: &imageID,
	})
}
