package salon

import (
	"context"

	reviewdomain "github.com/BruksfildServices01/salon-booking/internal/domain/review"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListResult struct {
	Salons      []models.Salon `json:"salons"`
	Total       int64          `json:"total"`
	Pages       int            `json:"pages"`
	CurrentPage int            `json:"current_page"`
	PerPage     int            `json:"per_page"`
}

type ListSalons struct {
	repo domain.Repository
}

func NewListSalons(repo domain.Repository) *ListSalons {
	return &ListSalons{repo: repo}
}

func (uc *ListSalons) Execute(ctx context.Context, f domain.ListFilter) (*ListResult, error) {
	f = f.Normalize()

	salons, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if salons == nil {
		salons = []models.Salon{}
	}

	return &ListResult{
		Salons:      salons,
		Total:       total,
		Pages:       domain.Pages(total, f.PerPage),
		CurrentPage: f.Page,
		PerPage:     f.PerPage,
	}, nil
}

// ======================================================
// DETAIL
// ======================================================

// RatingSummarizer yields the review aggregate of a salon.
type RatingSummarizer interface {
	Execute(ctx context.Context, salonID uint) (reviewdomain.Summary, error)
}

type Detail struct {
	models.Salon
	Services []domain.Offering    `json:"services"`
	Reviews  reviewdomain.Summary `json:"reviews"`
	Images   []models.SalonImage  `json:"images"`
}

type GetSalonDetail struct {
	repo    domain.Repository
	ratings RatingSummarizer
}

func NewGetSalonDetail(repo domain.Repository, ratings RatingSummarizer) *GetSalonDetail {
	return &GetSalonDetail{repo: repo, ratings: ratings}
}

func (uc *GetSalonDetail) Execute(ctx context.Context, salonID uint) (*Detail, error) {
	s, err := uc.repo.Get(ctx, salonID)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.ListOfferings(ctx, salonID)
	if err != nil {
		return nil, err
	}

	summary, err := uc.ratings.Execute(ctx, salonID)
	if err != nil {
		return nil, err
	}

	images, err := uc.repo.ListImages(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []models.SalonImage{}
	}

	return &Detail{
		Salon:    *s,
		Services: services,
		Reviews:  summary,
		Images:   images,
	}, nil
}

// ======================================================
// CATALOGUE
// ======================================================

type ListCatalogue struct {
	repo domain.Repository
}

func NewListCatalogue(repo domain.Repository) *ListCatalogue {
	return &ListCatalogue{repo: repo}
}

func (uc *ListCatalogue) Execute(ctx context.Context, bioDiamondOnly bool) ([]models.Service, error) {
	services, err := uc.repo.ListCatalogue(ctx, bioDiamondOnly)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}
