package salon

import (
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultCountry = "Portugal"
)

// ListFilter narrows the public directory. Text filters are
// case-insensitive substring matches.
type ListFilter struct {
	Cidade string
	Regiao string
	Search string

	Page    int
	PerPage int
}

// Normalize clamps paging to sane values.
func (f ListFilter) Normalize() ListFilter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
	f.Cidade = strings.TrimSpace(f.Cidade)
	f.Regiao = strings.TrimSpace(f.Regiao)
	f.Search = strings.TrimSpace(f.Search)
	return f
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// Pages is the number of pages needed for total rows.
func Pages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Offering is a salon's service joined with its catalogue entry.
type Offering struct {
	ID           uint    `json:"id"`
	ServiceID    uint    `json:"service_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	IsBioDiamond bool    `json:"is_bio_diamond"`
	Price        float64 `json:"price"`
	Duration     int     `json:"duration"`
}

// Update carries the editable salon fields; nil leaves a field unchanged.
type Update struct {
	Nome      *string
	Telefone  *string
	Email     *string
	Website   *string
	Regiao    *string
	Cidade    *string
	Rua       *string
	Porta     *string
	CodPostal *string
}

func (u Update) Apply(s *models.Salon) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.Nome, u.Nome)
	set(&s.Telefone, u.Telefone)
	set(&s.Email, u.Email)
	set(&s.Website, u.Website)
	set(&s.Regiao, u.Regiao)
	set(&s.Cidade, u.Cidade)
	set(&s.Rua, u.Rua)
	set(&s.Porta, u.Porta)
	set(&s.CodPostal, u.CodPostal)
}

// ImageUpdate carries the editable image fields; nil leaves a field unchanged.
type ImageUpdate struct {
	ImageAlt     *string
	IsPrimary    *bool
	DisplayOrder *int
}

func (u ImageUpdate) Apply(img *models.SalonImage) {
	if u.ImageAlt != nil {
		img.ImageAlt = *u.ImageAlt
	}
	if u.IsPrimary != nil {
		img.IsPrimary = *u.IsPrimary
	}
	if u.DisplayOrder != nil {
		img.DisplayOrder = *u.DisplayOrder
	}
}
