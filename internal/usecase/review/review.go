package review

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/review"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// ======================================================
// SUMMARY
// ======================================================

type GetRatingSummary struct {
	repo domain.Repository
}

func NewGetRatingSummary(repo domain.Repository) *GetRatingSummary {
	return &GetRatingSummary{repo: repo}
}

// Execute averages every review of the salon. A salon without reviews, or
// an id nobody uses, yields a zero summary.
func (uc *GetRatingSummary) Execute(ctx context.Context, salonID uint) (domain.Summary, error) {
	sum, count, err := uc.repo.Totals(ctx, salonID)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.NewSummary(sum, count), nil
}

// ======================================================
// LIST
// ======================================================

type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

type ListResult struct {
	Reviews    []models.Review `json:"reviews"`
	Pagination Pagination      `json:"pagination"`
	Summary    domain.Summary  `json:"summary"`
}

type ListReviews struct {
	repo    domain.Repository
	summary *GetRatingSummary
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo, summary: NewGetRatingSummary(repo)}
}

func (uc *ListReviews) Execute(
	ctx context.Context,
	salonID uint,
	page, perPage int,
) (*ListResult, error) {

	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}
	if perPage > domain.MaxPerPage {
		perPage = domain.MaxPerPage
	}

	exists, err := uc.repo.SalonExists(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrSalonNotFound
	}

	summary, err := uc.summary.Execute(ctx, salonID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.repo.ListPage(ctx, salonID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	pages := 0
	if summary.TotalReviews > 0 {
		pages = int((summary.TotalReviews + int64(perPage) - 1) / int64(perPage))
	}

	return &ListResult{
		Reviews: reviews,
		Pagination: Pagination{
			Page:    page,
			PerPage: perPage,
			Total:   summary.TotalReviews,
			Pages:   pages,
		},
		Summary: summary,
	}, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateReviewInput struct {
	SalonID       uint
	CustomerName  string
	CustomerEmail string
	Rating        *int
	Title         string
	Comment       string
}

type CreateReview struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCreateReview(repo domain.Repository) *CreateReview {
	return &CreateReview{repo: repo, now: time.Now}
}

func (uc *CreateReview) Execute(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	name := strings.TrimSpace(in.CustomerName)
	email := validators.NormalizeEmail(in.CustomerEmail)

	switch {
	case name == "":
		return nil, httperr.ErrInvalid("missing_field", "Missing required field: customer_name")
	case email == "":
		return nil, httperr.ErrInvalid("missing_field", "Missing required field: customer_email")
	case in.Rating == nil:
		return nil, httperr.ErrInvalid("missing_field", "Missing required field: rating")
	}

	if !domain.ValidRating(*in.Rating) {
		return nil, domain.ErrInvalidRating
	}
	if !validators.IsEmailSyntaxValid(email) {
		return nil, httperr.ErrInvalid("invalid_email", "Invalid customer email")
	}

	exists, err := uc.repo.SalonExists(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrSalonNotFound
	}

	r := &models.Review{
		SalonID:       in.SalonID,
		CustomerName:  name,
		CustomerEmail: email,
		Rating:        *in.Rating,
		Title:         strings.TrimSpace(in.Title),
		Comment:       strings.TrimSpace(in.Comment),
		CreatedAt:     uc.now(),
	}

	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
