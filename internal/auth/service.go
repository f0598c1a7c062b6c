package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

const MinPasswordLength = 6

var (
	ErrEmailTaken         = httperr.ErrConflict("user_exists", "User already exists")
	ErrInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Invalid credentials")
	ErrUserNotFound       = httperr.ErrUnauthorized("user_not_found", "User not found")
	ErrInvalidEmail       = httperr.ErrInvalid("invalid_email", "Invalid email address")
	ErrInvalidEmailDomain = httperr.ErrInvalid("invalid_email_domain", "Email domain does not accept mail")
	ErrWeakPassword       = httperr.ErrInvalid("weak_password", "Password must have at least 6 characters")
)

type UserRepository interface {
	// Create returns ErrEmailTaken when the address is already registered.
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Get(ctx context.Context, userID uint) (*models.User, error)
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type Service struct {
	users  UserRepository
	tokens *Tokens

	// domainCheck runs after the syntax check; nil skips it.
	domainCheck func(email string) bool
}

func NewService(users UserRepository, tokens *Tokens, domainCheck func(string) bool) *Service {
	return &Service{users: users, tokens: tokens, domainCheck: domainCheck}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	email := validators.NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)

	switch {
	case email == "":
		return nil, "", httperr.ErrInvalid("missing_field", "Missing required field: email")
	case in.Password == "":
		return nil, "", httperr.ErrInvalid("missing_field", "Missing required field: password")
	case name == "":
		return nil, "", httperr.ErrInvalid("missing_field", "Missing required field: name")
	}

	if !validators.IsEmailSyntaxValid(email) {
		return nil, "", ErrInvalidEmail
	}
	if s.domainCheck != nil && !s.domainCheck(email) {
		return nil, "", ErrInvalidEmailDomain
	}
	if len(in.Password) < MinPasswordLength {
		return nil, "", ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &models.User{Email: email, Name: name, PasswordHash: string(hashed)}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = validators.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", httperr.ErrInvalid("missing_credentials", "Email and password required")
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Me(ctx context.Context, userID uint) (*models.User, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
