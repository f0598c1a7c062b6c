package salon

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/customers"
	bookingdomain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

// ownedSalon loads the salon and fails with ErrNotOwner when userID does not
// own it.
func ownedSalon(
	ctx context.Context,
	repo domain.Repository,
	salonID uint,
	userID uint,
) (*models.Salon, error) {

	s, err := repo.Get(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if !s.OwnedBy(userID) {
		return nil, domain.ErrNotOwner
	}
	return s, nil
}

func missingField(name string) error {
	return httperr.ErrInvalid("missing_field", "Missing required field: "+name)
}

// ======================================================
// LIST OWNED
// ======================================================

type ListOwnedSalons struct {
	repo domain.Repository
}

func NewListOwnedSalons(repo domain.Repository) *ListOwnedSalons {
	return &ListOwnedSalons{repo: repo}
}

func (uc *ListOwnedSalons) Execute(ctx context.Context, userID uint) ([]models.Salon, error) {
	salons, err := uc.repo.ListOwned(ctx, userID)
	if err != nil {
		return nil, err
	}
	if salons == nil {
		salons = []models.Salon{}
	}
	return salons, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateSalonInput struct {
	Codigo    string
	Nome      string
	Cidade    string
	Regiao    string
	Telefone  string
	Email     string
	Website   string
	Rua       string
	Porta     string
	CodPostal string
	Pais      string
	Latitude  *float64
	Longitude *float64
}

type CreateSalon struct {
	repo      domain.Repository
	customers customers.Directory
	audit     *audit.Dispatcher
}

func NewCreateSalon(
	repo domain.Repository,
	directory customers.Directory,
	audit *audit.Dispatcher,
) *CreateSalon {
	return &CreateSalon{
		repo:      repo,
		customers: directory,
		audit:     audit,
	}
}

// Execute registers a salon for userID with the default weekly template.
// A customer code, when given, must exist in the legacy registry; the
// registry row fills in fields the request left empty.
func (uc *CreateSalon) Execute(
	ctx context.Context,
	userID uint,
	in CreateSalonInput,
) (*models.Salon, error) {

	required := []struct{ name, value string }{
		{"nome", in.Nome},
		{"cidade", in.Cidade},
		{"regiao", in.Regiao},
		{"telefone", in.Telefone},
		{"email", in.Email},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, missingField(r.name)
		}
	}

	email := validators.NormalizeEmail(in.Email)
	if !validators.IsEmailSyntaxValid(email) {
		return nil, httperr.ErrInvalid("invalid_email", "Invalid salon email")
	}

	pais := strings.TrimSpace(in.Pais)
	if pais == "" {
		pais = domain.DefaultCountry
	}

	s := &models.Salon{
		Nome:      strings.TrimSpace(in.Nome),
		Cidade:    strings.TrimSpace(in.Cidade),
		Regiao:    strings.TrimSpace(in.Regiao),
		Telefone:  strings.TrimSpace(in.Telefone),
		Email:     email,
		Website:   strings.TrimSpace(in.Website),
		Rua:       strings.TrimSpace(in.Rua),
		Porta:     strings.TrimSpace(in.Porta),
		CodPostal: strings.TrimSpace(in.CodPostal),
		Pais:      pais,
		Estado:    models.SalonActive,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		OwnerID:   &userID,
	}

	if code := strings.TrimSpace(in.Codigo); code != "" {
		if err := uc.applyCustomer(ctx, s, code); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Create(ctx, s, bookingdomain.DefaultTemplate(0)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   &userID,
		Action:   audit.ActionSalonCreated,
		Entity:   "salon",
		EntityID: &s.ID,
	})

	return s, nil
}

func (uc *CreateSalon) applyCustomer(ctx context.Context, s *models.Salon, code string) error {
	if !customers.ValidCode(code) || uc.customers == nil {
		return domain.ErrUnknownCodigo
	}

	c, err := uc.customers.Lookup(ctx, code)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrUnknownCodigo
	}

	s.Codigo = &code
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&s.NIF, c.NIF)
	fill(&s.PaisMorada, c.PaisMorada)
	fill(&s.Website, c.Website)
	fill(&s.Rua, c.Rua)
	fill(&s.Porta, c.Porta)
	fill(&s.CodPostal, c.CodPostal)
	return nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateSalon struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSalon(repo domain.Repository, audit *audit.Dispatcher) *UpdateSalon {
	return &UpdateSalon{repo: repo, audit: audit}
}

func (uc *UpdateSalon) Execute(
	ctx context.Context,
	userID uint,
	salonID uint,
	in domain.Update,
) (*models.Salon, error) {

	s, err := ownedSalon(ctx, uc.repo, salonID, userID)
	if err != nil {
		return nil, err
	}

	if in.Nome != nil && strings.TrimSpace(*in.Nome) == "" {
		return nil, missingField("nome")
	}
	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)
		if !validators.IsEmailSyntaxValid(email) {
			return nil, httperr.ErrInvalid("invalid_email", "Invalid salon email")
		}
		in.Email = &email
	}

	in.Apply(s)

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  s.ID,
		UserID:   &userID,
		Action:   audit.ActionSalonUpdated,
		Entity:   "salon",
		EntityID: &s.ID,
	})

	return s, nil
}
