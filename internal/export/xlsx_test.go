package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func TestWriteBookings(t *testing.T) {
	phone := "912345678"
	bookings := []models.Booking{
		{
			ID: 1, SalonID: 1, ServiceID: 2, CustomerName: "Ana", CustomerEmail: "ana@example.com",
			CustomerPhone: &phone, BookingDate: "2024-01-15", BookingTime: "10:00",
			Duration: 45, Status: "confirmed", CreatedAt: time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			ID: 2, SalonID: 1, ServiceID: 2, CustomerName: "Rui", CustomerEmail: "rui@example.com",
			BookingDate: "2024-01-15", BookingTime: "11:00", Duration: 60, Status: "cancelled",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBookings(&buf, "A very long salon name that overflows", bookings))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Len(t, sheets[0], maxSheetName)

	rows, err := f.GetRows(sheets[0])
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, bookingColumns, rows[0])
	assert.Equal(t, "Ana", rows[1][5])
	assert.Equal(t, "912345678", rows[1][7])
	assert.Equal(t, "cancelled", rows[2][4])
	assert.Equal(t, "", rows[2][7])
}

func TestWriteBookingsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBookings(&buf, "", nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Bookings"}, f.GetSheetList())
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Bookings", sheetName("  "))
	assert.Equal(t, "Corte-Cor", sheetName("Corte/Cor"))
	assert.Equal(t, "Salão Beleza", sheetName("Salão Beleza"))
	assert.Len(t, []rune(sheetName("Salão de Beleza e Estética Avançada Lisboa")), maxSheetName)
}
