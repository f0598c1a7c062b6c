package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/db/dbtest"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

type fixture struct {
	db      *gorm.DB
	repo    *repository.BookingGormRepository
	owner   *models.User
	salon   *models.Salon
	service *models.Service
}

// newFixture seeds a salon open Monday to Friday 09:00-18:00 and Saturday
// 10:00-16:00.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb := dbtest.New(t)
	owner := dbtest.SeedUser(t, gdb, "owner@salao.pt")
	salon := dbtest.SeedSalon(t, gdb, "Salão Central", owner.ID)
	svc := dbtest.SeedService(t, gdb, "Corte")

	for _, iv := range domain.DefaultTemplate(salon.ID) {
		dbtest.SeedInterval(t, gdb, salon.ID, iv.Weekday, iv.StartTime, iv.EndTime)
	}

	return &fixture{
		db:      gdb,
		repo:    repository.NewBookingGormRepository(gdb),
		owner:   owner,
		salon:   salon,
		service: svc,
	}
}

func (f *fixture) input(date, at string) CreateBookingInput {
	return CreateBookingInput{
		SalonID:       f.salon.ID,
		ServiceID:     f.service.ID,
		CustomerName:  "Ana Silva",
		CustomerEmail: "ana@example.com",
		BookingDate:   date,
		BookingTime:   at,
	}
}

// ======================================================
// Availability
// ======================================================

func TestGetAvailabilityWeekdayWithoutBookings(t *testing.T) {
	f := newFixture(t)

	// 2024-01-15 is a Monday.
	res, err := NewGetAvailability(f.repo).Execute(context.Background(), f.salon.ID, "2024-01-15")
	require.NoError(t, err)

	require.Len(t, res.TimeSlots, 18)
	assert.Equal(t, "09:00", res.TimeSlots[0].Time)
	assert.Equal(t, "17:30", res.TimeSlots[17].Time)
	for _, s := range res.TimeSlots {
		assert.True(t, s.Available, s.Time)
	}
	assert.Equal(t, AvailabilitySummary{TotalSlots: 18, AvailableSlots: 18}, res.Summary)
}

func TestGetAvailabilityMarksBookedSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// 2024-01-20 is a Saturday.
	_, err := NewCreateBooking(f.repo, nil).Execute(ctx, f.input("2024-01-20", "11:00"))
	require.NoError(t, err)

	res, err := NewGetAvailability(f.repo).Execute(ctx, f.salon.ID, "2024-01-20")
	require.NoError(t, err)

	require.Len(t, res.TimeSlots, 12)
	assert.Equal(t, "10:00", res.TimeSlots[0].Time)
	assert.Equal(t, "15:30", res.TimeSlots[11].Time)
	assert.Len(t, res.AvailableSlots, 11)
	assert.NotContains(t, res.AvailableSlots, "11:00")
	for _, s := range res.TimeSlots {
		assert.Equal(t, s.Time != "11:00", s.Available, s.Time)
	}
}

func TestGetAvailabilityCancelledBookingDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b, err := NewCreateBooking(f.repo, nil).Execute(ctx, f.input("2024-01-15", "10:00"))
	require.NoError(t, err)

	_, err = NewUpdateBookingStatus(f.repo, nil).Execute(ctx, f.owner.ID, b.ID, "cancelled")
	require.NoError(t, err)

	res, err := NewGetAvailability(f.repo).Execute(ctx, f.salon.ID, "2024-01-15")
	require.NoError(t, err)
	assert.Contains(t, res.AvailableSlots, "10:00")
}

func TestGetAvailabilityClosedDayIsEmpty(t *testing.T) {
	f := newFixture(t)

	// 2024-01-21 is a Sunday.
	res, err := NewGetAvailability(f.repo).Execute(context.Background(), f.salon.ID, "2024-01-21")
	require.NoError(t, err)
	assert.NotNil(t, res.TimeSlots)
	assert.Empty(t, res.TimeSlots)
	assert.Empty(t, res.AvailableSlots)
}

func TestGetAvailabilityErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewGetAvailability(f.repo)

	_, err := uc.Execute(ctx, f.salon.ID, "")
	assert.ErrorIs(t, err, domain.ErrMissingDate)

	_, err = uc.Execute(ctx, f.salon.ID, "15/01/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = uc.Execute(ctx, 999, "2024-01-15")
	assert.ErrorIs(t, err, domain.ErrSalonNotFound)
}

// ======================================================
// Admission
// ======================================================

func TestCreateBookingPersistsConfirmed(t *testing.T) {
	f := newFixture(t)

	in := f.input("2024-01-15", "9:30")
	phone := " 912345678 "
	in.CustomerPhone = &phone

	b, err := NewCreateBooking(f.repo, nil).Execute(context.Background(), in)
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, string(domain.StatusConfirmed), b.Status)
	assert.Equal(t, "09:30", b.BookingTime)
	assert.Equal(t, domain.DefaultDurationMinutes, b.Duration)
	require.NotNil(t, b.CustomerPhone)
	assert.Equal(t, "912345678", *b.CustomerPhone)
	assert.False(t, b.CreatedAt.IsZero())
}

func TestCreateBookingUsesOfferingDuration(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Create(&models.SalonService{
		SalonID: f.salon.ID, ServiceID: f.service.ID, Price: 25, Duration: 90,
	}).Error)

	b, err := NewCreateBooking(f.repo, nil).Execute(context.Background(), f.input("2024-01-15", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, 90, b.Duration)
}

func TestCreateBookingRejectsTakenSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewCreateBooking(f.repo, nil)

	_, err := uc.Execute(ctx, f.input("2024-01-15", "10:00"))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, f.input("2024-01-15", "10:00"))
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	kind, _ := httperr.KindOf(err)
	assert.Equal(t, httperr.KindConflict, kind)

	var count int64
	require.NoError(t, f.db.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateBookingOutsideOpeningHoursIsAccepted(t *testing.T) {
	f := newFixture(t)

	// Sunday, salon closed: admission does not consult opening hours.
	_, err := NewCreateBooking(f.repo, nil).Execute(context.Background(), f.input("2024-01-21", "22:00"))
	assert.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateBooking(f.repo, nil)

	tests := []struct {
		name   string
		mutate func(*CreateBookingInput)
		want   error
	}{
		{"missing salon", func(in *CreateBookingInput) { in.SalonID = 0 }, domain.ErrMissingField("salon_id")},
		{"missing service", func(in *CreateBookingInput) { in.ServiceID = 0 }, domain.ErrMissingField("service_id")},
		{"missing name", func(in *CreateBookingInput) { in.CustomerName = "  " }, domain.ErrMissingField("customer_name")},
		{"missing email", func(in *CreateBookingInput) { in.CustomerEmail = "" }, domain.ErrMissingField("customer_email")},
		{"missing date", func(in *CreateBookingInput) { in.BookingDate = "" }, domain.ErrMissingField("booking_date")},
		{"missing time", func(in *CreateBookingInput) { in.BookingTime = "" }, domain.ErrMissingField("booking_time")},
		{"bad email", func(in *CreateBookingInput) { in.CustomerEmail = "ana" }, domain.ErrInvalidEmail},
		{"bad date", func(in *CreateBookingInput) { in.BookingDate = "2024-02-30" }, domain.ErrInvalidDateTime},
		{"bad time", func(in *CreateBookingInput) { in.BookingTime = "25:00" }, domain.ErrInvalidDateTime},
		{"unknown salon", func(in *CreateBookingInput) { in.SalonID = 999 }, domain.ErrSalonNotFound},
		{"unknown service", func(in *CreateBookingInput) { in.ServiceID = 999 }, domain.ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := f.input("2024-01-15", "10:00")
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.Equal(t, tt.want, err)
		})
	}

	var count int64
	require.NoError(t, f.db.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateBookingConcurrentRequestsAdmitOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewCreateBooking(f.repo, nil)

	const n = 6
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(ctx, f.input("2024-01-16", "15:00"))
		}(i)
	}
	wg.Wait()

	var admitted int
	for _, err := range errs {
		if err == nil {
			admitted++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrSlotTaken)
	}
	assert.Equal(t, 1, admitted)
}

// ======================================================
// Status / delete / list
// ======================================================

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	create := NewCreateBooking(f.repo, nil)
	update := NewUpdateBookingStatus(f.repo, nil)

	b, err := create.Execute(ctx, f.input("2024-01-15", "10:00"))
	require.NoError(t, err)

	_, err = update.Execute(ctx, f.owner.ID, b.ID, "")
	assert.True(t, httperr.IsBusiness(err, "missing_status"))

	_, err = update.Execute(ctx, f.owner.ID, b.ID, "pending")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	stranger := dbtest.SeedUser(t, f.db, "other@salao.pt")
	_, err = update.Execute(ctx, stranger.ID, b.ID, "cancelled")
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = update.Execute(ctx, f.owner.ID, 999, "cancelled")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	got, err := update.Execute(ctx, f.owner.ID, b.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)

	// Another customer takes the freed slot; re-confirming now conflicts.
	_, err = create.Execute(ctx, f.input("2024-01-15", "10:00"))
	require.NoError(t, err)

	_, err = update.Execute(ctx, f.owner.ID, b.ID, "confirmed")
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	stored, err := f.repo.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", stored.Status)
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	b, err := NewCreateBooking(f.repo, nil).Execute(ctx, f.input("2024-01-15", "10:00"))
	require.NoError(t, err)

	stranger := dbtest.SeedUser(t, f.db, "other@salao.pt")
	del := NewDeleteBooking(f.repo, nil)

	assert.ErrorIs(t, del.Execute(ctx, stranger.ID, b.ID), domain.ErrNotOwner)
	require.NoError(t, del.Execute(ctx, f.owner.ID, b.ID))
	assert.ErrorIs(t, del.Execute(ctx, f.owner.ID, b.ID), domain.ErrBookingNotFound)
}

func TestListSalonBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	create := NewCreateBooking(f.repo, nil)

	_, err := create.Execute(ctx, f.input("2024-01-15", "10:00"))
	require.NoError(t, err)
	_, err = create.Execute(ctx, f.input("2024-01-16", "10:00"))
	require.NoError(t, err)

	salon, bookings, err := NewListSalonBookings(f.repo).Execute(ctx, f.owner.ID, f.salon.ID)
	require.NoError(t, err)
	assert.Equal(t, f.salon.ID, salon.ID)
	require.Len(t, bookings, 2)
	assert.Equal(t, "2024-01-16", bookings[0].BookingDate)

	_, _, err = NewListSalonBookings(f.repo).Execute(ctx, f.owner.ID, 999)
	assert.ErrorIs(t, err, domain.ErrSalonNotFound)
}

// ======================================================
// Opening hours
// ======================================================

func strp(s string) *string { return &s }

func TestSetOpeningHoursReplacesTemplate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := NewSetOpeningHours(f.repo, nil).Execute(ctx, f.owner.ID, f.salon.ID, map[string]domain.DayHours{
		"0": {IsOpen: true, StartTime: strp("08:00"), EndTime: strp("12:00")},
		"1": {IsOpen: false},
		"6": {IsOpen: true, StartTime: strp("10:00")},
	})
	require.NoError(t, err)

	hours, err := NewGetOpeningHours(f.repo).Execute(ctx, f.owner.ID, f.salon.ID)
	require.NoError(t, err)
	require.Len(t, hours, 7)

	assert.True(t, hours[0].IsOpen)
	assert.Equal(t, "08:00", *hours[0].StartTime)
	assert.Equal(t, "12:00", *hours[0].EndTime)
	for day := 1; day < 7; day++ {
		assert.False(t, hours[day].IsOpen, day)
		assert.Nil(t, hours[day].StartTime, day)
	}

	res, err := NewGetAvailability(f.repo).Execute(ctx, f.salon.ID, "2024-01-15")
	require.NoError(t, err)
	assert.Len(t, res.TimeSlots, 8)
}

func TestSetOpeningHoursInvalidLeavesTemplateUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	before, err := f.repo.ListIntervals(ctx, f.salon.ID)
	require.NoError(t, err)

	err = NewSetOpeningHours(f.repo, nil).Execute(ctx, f.owner.ID, f.salon.ID, map[string]domain.DayHours{
		"0": {IsOpen: true, StartTime: strp("09:00"), EndTime: strp("18:00")},
		"4": {IsOpen: true, StartTime: strp("9h"), EndTime: strp("18:00")},
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid time format for day 4", err.Error())

	after, err := f.repo.ListIntervals(ctx, f.salon.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestOpeningHoursOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	stranger := dbtest.SeedUser(t, f.db, "other@salao.pt")

	_, err := NewGetOpeningHours(f.repo).Execute(ctx, stranger.ID, f.salon.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	err = NewSetOpeningHours(f.repo, nil).Execute(ctx, stranger.ID, f.salon.ID, map[string]domain.DayHours{})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	err = NewSetOpeningHours(f.repo, nil).Execute(ctx, f.owner.ID, 999, map[string]domain.DayHours{})
	assert.ErrorIs(t, err, domain.ErrSalonNotFound)
}
