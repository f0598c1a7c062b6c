package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/review"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) SalonExists(
	ctx context.Context,
	salonID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", salonID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewGormRepository) Totals(
	ctx context.Context,
	salonID uint,
) (int64, int64, error) {

	var row struct {
		Total int64
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(SUM(rating), 0) AS total, COUNT(*) AS count").
		Where("salon_id = ?", salonID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Total, row.Count, nil
}

func (r *ReviewGormRepository) ListPage(
	ctx context.Context,
	salonID uint,
	limit, offset int,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) Create(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
