package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
)

func newService(t *testing.T, domainCheck func(string) bool) (*auth.Service, *auth.Tokens) {
	t.Helper()
	gdb := dbtest.New(t)
	tokens := auth.NewTokens("test-secret", time.Hour)
	return auth.NewService(repository.NewUserGormRepository(gdb), tokens, domainCheck), tokens
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, tokens := newService(t, nil)

	u, token, err := svc.Register(ctx, auth.RegisterInput{
		Email:    " Gestor@Salao.PT ",
		Password: "segredo1",
		Name:     "Gestor",
	})
	require.NoError(t, err)
	assert.Equal(t, "gestor@salao.pt", u.Email)
	assert.NotEqual(t, "segredo1", u.PasswordHash)

	id, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	logged, _, err := svc.Login(ctx, "gestor@salao.pt", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	me, err := svc.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gestor", me.Name)
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, nil)

	in := auth.RegisterInput{Email: "a@b.pt", Password: "segredo1", Name: "A"}
	_, _, err := svc.Register(ctx, in)
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, in)
	assert.ErrorIs(t, err, auth.ErrEmailTaken)

	kind, _ := httperr.KindOf(err)
	assert.Equal(t, httperr.KindConflict, kind)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		in   auth.RegisterInput
		code string
	}{
		{"missing email", auth.RegisterInput{Password: "segredo1", Name: "A"}, "missing_field"},
		{"missing name", auth.RegisterInput{Email: "a@b.pt", Password: "segredo1"}, "missing_field"},
		{"bad email", auth.RegisterInput{Email: "nope", Password: "segredo1", Name: "A"}, "invalid_email"},
		{"short password", auth.RegisterInput{Email: "a@b.pt", Password: "123", Name: "A"}, "weak_password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t, nil)
			_, _, err := svc.Register(ctx, tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}
}

func TestRegisterRunsDomainCheck(t *testing.T) {
	svc, _ := newService(t, func(string) bool { return false })

	_, _, err := svc.Register(context.Background(), auth.RegisterInput{Email: "a@b.pt", Password: "segredo1", Name: "A"})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailDomain)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, nil)

	_, _, err := svc.Register(ctx, auth.RegisterInput{Email: "a@b.pt", Password: "segredo1", Name: "A"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@b.pt", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "ghost@b.pt", "segredo1")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
