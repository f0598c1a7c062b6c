package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (r *SalonGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Salon, int64, error) {

	f = f.Normalize()

	q := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("estado = ?", models.SalonActive)

	if f.Cidade != "" {
		q = q.Where("LOWER(cidade) LIKE ?", likePattern(f.Cidade))
	}
	if f.Regiao != "" {
		q = q.Where("LOWER(regiao) LIKE ?", likePattern(f.Regiao))
	}
	if f.Search != "" {
		q = q.Where("LOWER(nome) LIKE ?", likePattern(f.Search))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var salons []models.Salon
	if err := q.
		Order("id ASC").
		Limit(f.PerPage).
		Offset(f.Offset()).
		Find(&salons).Error; err != nil {
		return nil, 0, err
	}

	return salons, total, nil
}

func (r *SalonGormRepository) Get(
	ctx context.Context,
	salonID uint,
) (*models.Salon, error) {

	var s models.Salon
	if err := r.db.WithContext(ctx).First(&s, salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSalonNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SalonGormRepository) ListOwned(
	ctx context.Context,
	ownerID uint,
) ([]models.Salon, error) {

	var salons []models.Salon
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&salons).Error; err != nil {
		return nil, err
	}
	return salons, nil
}

func (r *SalonGormRepository) Create(
	ctx context.Context,
	s *models.Salon,
	hours []models.OpeningInterval,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(s).Error; err != nil {
			return err
		}

		if len(hours) == 0 {
			return nil
		}
		for i := range hours {
			hours[i].SalonID = s.ID
		}
		return tx.Create(&hours).Error
	})

	if httperr.IsUniqueViolation(err) {
		return domain.ErrCodigoTaken
	}
	return err
}

func (r *SalonGormRepository) Update(
	ctx context.Context,
	s *models.Salon,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// --------------------------------------------------
// Catalogue / offerings
// --------------------------------------------------

func (r *SalonGormRepository) ListCatalogue(
	ctx context.Context,
	bioDiamondOnly bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Model(&models.Service{})
	if bioDiamondOnly {
		q = q.Where("is_bio_diamond = ?", true)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *SalonGormRepository) ServiceExists(
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

func (r *SalonGormRepository) ListOfferings(
	ctx context.Context,
	salonID uint,
) ([]domain.Offering, error) {

	var rows []domain.Offering
	if err := r.db.WithContext(ctx).
		Table("salon_services").
		Select(`salon_services.id AS id,
			services.id AS service_id,
			services.name AS name,
			services.category AS category,
			services.description AS description,
			services.is_bio_diamond AS is_bio_diamond,
			salon_services.price AS price,
			salon_services.duration AS duration`).
		Joins("JOIN services ON services.id = salon_services.service_id").
		Where("salon_services.salon_id = ?", salonID).
		Order("salon_services.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []domain.Offering{}
	}
	return rows, nil
}

func (r *SalonGormRepository) GetOffering(
	ctx context.Context,
	salonID uint,
	offeringID uint,
) (*models.SalonService, error) {

	var o models.SalonService
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND id = ?", salonID, offeringID).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfferingNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *SalonGormRepository) CreateOffering(
	ctx context.Context,
	o *models.SalonService,
) error {

	err := r.db.WithContext(ctx).Omit("Service").Create(o).Error
	if httperr.IsUniqueViolation(err) {
		return domain.ErrOfferingExists
	}
	return err
}

func (r *SalonGormRepository) UpdateOffering(
	ctx context.Context,
	o *models.SalonService,
) error {

	return r.db.WithContext(ctx).
		Model(&models.SalonService{}).
		Where("id = ?", o.ID).
		Updates(map[string]any{
			"price":    o.Price,
			"duration": o.Duration,
		}).Error
}

func (r *SalonGormRepository) DeleteOffering(
	ctx context.Context,
	o *models.SalonService,
) error {
	return r.db.WithContext(ctx).Delete(&models.SalonService{}, o.ID).Error
}

// --------------------------------------------------
// Images
// --------------------------------------------------

func (r *SalonGormRepository) ListImages(
	ctx context.Context,
	salonID uint,
) ([]models.SalonImage, error) {

	var images []models.SalonImage
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("is_primary DESC, display_order ASC, id ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *SalonGormRepository) GetImage(
	ctx context.Context,
	salonID uint,
	imageID uint,
) (*models.SalonImage, error) {

	var img models.SalonImage
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND id = ?", salonID, imageID).
		First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (r *SalonGormRepository) CreateImage(
	ctx context.Context,
	img *models.SalonImage,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.SalonImage{}).
			Where("salon_id = ?", img.SalonID).
			Count(&count).Error; err != nil {
			return err
		}

		img.IsPrimary = count == 0
		img.DisplayOrder = int(count)

		return tx.Create(img).Error
	})
}

func (r *SalonGormRepository) UpdateImage(
	ctx context.Context,
	img *models.SalonImage,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if img.IsPrimary {
			if err := tx.
				Model(&models.SalonImage{}).
				Where("salon_id = ? AND id <> ?", img.SalonID, img.ID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}

		return tx.
			Model(&models.SalonImage{}).
			Where("id = ?", img.ID).
			Updates(map[string]any{
				"image_alt":     img.ImageAlt,
				"is_primary":    img.IsPrimary,
				"display_order": img.DisplayOrder,
			}).Error
	})
}

func (r *SalonGormRepository) DeleteImage(
	ctx context.Context,
	img *models.SalonImage,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SalonImage{}, img.ID).Error; err != nil {
			return err
		}

		if !img.IsPrimary {
			return nil
		}

		// Promote the next image so the gallery keeps a cover.
		var next models.SalonImage
		err := tx.
			Where("salon_id = ?", img.SalonID).
			Order("display_order ASC, id ASC").
			First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&next).Update("is_primary", true).Error
	})
}

// Compile-time check
var _ domain.Repository = (*SalonGormRepository)(nil)
