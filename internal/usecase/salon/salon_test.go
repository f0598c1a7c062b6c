package salon

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/customers"
	"github.com/BruksfildServices01/salon-booking/internal/db/dbtest"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	ucReview "github.com/BruksfildServices01/salon-booking/internal/usecase/review"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut bool
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (s *memStore) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	if s.failPut {
		return "", errors.New("bucket unavailable")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = body
	return "https://cdn.test/" + key, nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func setup(t *testing.T) (*gorm.DB, *repository.SalonGormRepository, *models.User) {
	t.Helper()
	gdb := dbtest.New(t)
	return gdb, repository.NewSalonGormRepository(gdb), dbtest.SeedUser(t, gdb, "owner@salao.pt")
}

func validInput() CreateSalonInput {
	return CreateSalonInput{
		Nome: "Salão Rosa", Cidade: "Lisboa", Regiao: "Lisboa",
		Telefone: "210000000", Email: "Rosa@Salao.pt",
	}
}

func TestCreateSalonSeedsDefaultHours(t *testing.T) {
	ctx := context.Background()
	gdb, repo, owner := setup(t)

	s, err := NewCreateSalon(repo, nil, nil).Execute(ctx, owner.ID, validInput())
	require.NoError(t, err)

	assert.Equal(t, models.SalonActive, s.Estado)
	assert.Equal(t, domain.DefaultCountry, s.Pais)
	assert.Equal(t, "rosa@salao.pt", s.Email)
	assert.True(t, s.OwnedBy(owner.ID))

	var hours []models.OpeningInterval
	require.NoError(t, gdb.Where("salon_id = ?", s.ID).Order("weekday").Find(&hours).Error)
	require.Len(t, hours, 6)
	assert.Equal(t, "09:00", hours[0].StartTime)
	assert.Equal(t, 5, hours[5].Weekday)
	assert.Equal(t, "16:00", hours[5].EndTime)
}

func TestCreateSalonRequiredFields(t *testing.T) {
	_, repo, owner := setup(t)
	uc := NewCreateSalon(repo, nil, nil)

	in := validInput()
	in.Telefone = " "
	_, err := uc.Execute(context.Background(), owner.ID, in)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: telefone", err.Error())

	in = validInput()
	in.Email = "nope"
	_, err = uc.Execute(context.Background(), owner.ID, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))
}

func TestCreateSalonWithCustomerCode(t *testing.T) {
	ctx := context.Background()
	_, repo, owner := setup(t)

	dir := customers.NewMemoryDirectory()
	require.NoError(t, dir.Load(ctx, []customers.Customer{{Codigo: "1001", NIF: "500100200", Rua: "Rua Augusta"}}))
	uc := NewCreateSalon(repo, dir, nil)

	in := validInput()
	in.Codigo = "1001"
	s, err := uc.Execute(ctx, owner.ID, in)
	require.NoError(t, err)
	require.NotNil(t, s.Codigo)
	assert.Equal(t, "1001", *s.Codigo)
	assert.Equal(t, "500100200", s.NIF)
	assert.Equal(t, "Rua Augusta", s.Rua)

	_, err = uc.Execute(ctx, owner.ID, in)
	assert.ErrorIs(t, err, domain.ErrCodigoTaken)

	in.Codigo = "2002"
	_, err = uc.Execute(ctx, owner.ID, in)
	assert.ErrorIs(t, err, domain.ErrUnknownCodigo)

	in.Codigo = "12ab"
	_, err = uc.Execute(ctx, owner.ID, in)
	assert.ErrorIs(t, err, domain.ErrUnknownCodigo)
}

func TestUpdateSalonOwnership(t *testing.T) {
	ctx := context.Background()
	gdb, repo, owner := setup(t)
	s := dbtest.SeedSalon(t, gdb, "Antigo", owner.ID)
	stranger := dbtest.SeedUser(t, gdb, "x@salao.pt")
	uc := NewUpdateSalon(repo, nil)

	nome := "Novo"
	_, err := uc.Execute(ctx, stranger.ID, s.ID, domain.Update{Nome: &nome})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = uc.Execute(ctx, owner.ID, 999, domain.Update{Nome: &nome})
	assert.ErrorIs(t, err, domain.ErrSalonNotFound)

	updated, err := uc.Execute(ctx, owner.ID, s.ID, domain.Update{Nome: &nome})
	require.NoError(t, err)
	assert.Equal(t, "Novo", updated.Nome)
	assert.Equal(t, "Lisboa", updated.Cidade)

	stored, err := repo.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Novo", stored.Nome)
}

func TestListSalonsPagination(t *testing.T) {
	gdb, repo, _ := setup(t)
	for i := 0; i < 3; i++ {
		dbtest.SeedSalon(t, gdb, "Salão", 0)
	}

	res, err := NewListSalons(repo).Execute(context.Background(), domain.ListFilter{PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Len(t, res.Salons, 2)
}

func TestGetSalonDetail(t *testing.T) {
	ctx := context.Background()
	gdb, repo, owner := setup(t)
	s := dbtest.SeedSalon(t, gdb, "Salão", owner.ID)
	svc := dbtest.SeedService(t, gdb, "Corte")
	require.NoError(t, repo.CreateOffering(ctx, &models.SalonService{SalonID: s.ID, ServiceID: svc.ID, Price: 12.5, Duration: 30}))
	require.NoError(t, gdb.Create(&models.Review{SalonID: s.ID, CustomerName: "A", CustomerEmail: "a@b.pt", Rating: 4}).Error)
	require.NoError(t, gdb.Create(&models.Review{SalonID: s.ID, CustomerName: "B", CustomerEmail: "b@b.pt", Rating: 5}).Error)

	ratings := ucReview.NewGetRatingSummary(repository.NewReviewGormRepository(gdb))
	d, err := NewGetSalonDetail(repo, ratings).Execute(ctx, s.ID)
	require.NoError(t, err)

	assert.Equal(t, "Salão", d.Nome)
	require.Len(t, d.Services, 1)
	assert.Equal(t, "Corte", d.Services[0].Name)
	assert.Equal(t, 4.5, d.Reviews.AverageRating)
	assert.Equal(t, int64(2), d.Reviews.TotalReviews)
	assert.NotNil(t, d.Images)

	_, err = NewGetSalonDetail(repo, ratings).Execute(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrSalonNotFound)
}

func TestOfferings(t *testing.T) {
	ctx := context.Background()
	gdb, repo, owner := setup(t)
	s := dbtest.SeedSalon(t, gdb, "Salão", owner.ID)
	svc := dbtest.SeedService(t, gdb, "Corte")
	uc := NewOfferings(repo, nil)

	price, duration := 20.0, 45
	_, err := uc.Add(ctx, owner.ID, s.ID, OfferingInput{ServiceID: svc.ID, Price: &price})
	assert.Equal(t, missingField("duration"), err)

	bad := -1
	_, err = uc.Add(ctx, owner.ID, s.ID, OfferingInput{ServiceID: svc.ID, Price: &price, Duration: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	_, err = uc.Add(ctx, owner.ID, s.ID, OfferingInput{ServiceID: 999, Price: &price, Duration: &duration})
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)

	o, err := uc.Add(ctx, owner.ID, s.ID, OfferingInput{ServiceID: svc.ID, Price: &price, Duration: &duration})
	require.NoError(t, err)

	_, err = uc.Add(ctx, owner.ID, s.ID, OfferingInput{ServiceID: svc.ID, Price: &price, Duration: &duration})
	assert.ErrorIs(t, err, domain.ErrOfferingExists)

	newPrice := 25.0
	updated, err := uc.Update(ctx, owner.ID, s.ID, o.ID, OfferingInput{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Price)
	assert.Equal(t, 45, updated.Duration)

	list, err := uc.List(ctx, owner.ID, s.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 25.0, list[0].Price)

	stranger := dbtest.SeedUser(t, gdb, "x@salao.pt")
	assert.ErrorIs(t, uc.Delete(ctx, stranger.ID, s.ID, o.ID), domain.ErrNotOwner)

	require.NoError(t, uc.Delete(ctx, owner.ID, s.ID, o.ID))
	assert.ErrorIs(t, uc.Delete(ctx, owner.ID, s.ID, o.ID), domain.ErrOfferingNotFound)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 30))))
	return buf.Bytes()
}

func TestImagesLifecycle(t *testing.T) {
	ctx := context.Background()
	gdb, repo, owner := setup(t)
	s := dbtest.SeedSalon(t, gdb, "Salão", owner.ID)
	store := newMemStore()
	uc := NewImages(repo, store, nil, zerolog.Nop())

	first, err := uc.Upload(ctx, owner.ID, s.ID, pngBytes(t), " Fachada ")
	require.NoError(t, err)
	assert.True(t, first.IsPrimary)
	assert.Equal(t, "Fachada", first.ImageAlt)
	assert.Contains(t, first.ImageURL, "https://cdn.test/salons/")
	assert.Len(t, store.objects, 1)

	second, err := uc.Upload(ctx, owner.ID, s.ID, pngBytes(t), "")
	require.NoError(t, err)
	assert.False(t, second.IsPrimary)

	primary := true
	_, err = uc.Update(ctx, owner.ID, s.ID, second.ID, domain.ImageUpdate{IsPrimary: &primary})
	require.NoError(t, err)

	images, err := uc.List(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, second.ID, images[0].ID)

	require.NoError(t, uc.Delete(ctx, owner.ID, s.ID, first.ID))
	assert.Len(t, store.objects, 1)

	_, err = uc.Upload(ctx, owner.ID, s.ID, []byte("not an image"), "")
	assert.ErrorIs(t, err, ErrImageFormat)

	store.failPut = true
	_, err = uc.Upload(ctx, owner.ID, s.ID, pngBytes(t), "")
	assert.Error(t, err)
}

func TestImagesWithoutStorage(t *testing.T) {
	gdb, repo, owner := setup(t)
	s := dbtest.SeedSalon(t, gdb, "Salão", owner.ID)

	_, err := NewImages(repo, nil, nil, zerolog.Nop()).Upload(context.Background(), owner.ID, s.ID, pngBytes(t), "")
	assert.ErrorIs(t, err, ErrStorageDisabled)
}

func TestListCatalogue(t *testing.T) {
	gdb, repo, _ := setup(t)
	dbtest.SeedService(t, gdb, "Corte")

	services, err := NewListCatalogue(repo).Execute(context.Background(), true)
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}
