package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"confirmed", "cancelled", "completed"} {
		st, err := ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, Status(s), st)
	}

	_, err := ParseStatus("pending")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestOnlyConfirmedOccupiesSlot(t *testing.T) {
	assert.True(t, StatusConfirmed.Occupies())
	assert.False(t, StatusCancelled.Occupies())
	assert.False(t, StatusCompleted.Occupies())
	assert.Equal(t, StatusConfirmed, InitialStatus())
}

func TestChangeStatus(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}

	assert.False(t, ChangeStatus(b, StatusConfirmed))
	assert.True(t, ChangeStatus(b, StatusCancelled))
	assert.Equal(t, "cancelled", b.Status)
	assert.True(t, ChangeStatus(b, StatusConfirmed))
	assert.Equal(t, "confirmed", b.Status)
}
