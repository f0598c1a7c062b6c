package booking

import (
	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// ChangeStatus moves a booking to next. Owners may move a booking between
// any two states; re-confirming is checked against the ledger's unique
// index when the change is persisted.
func ChangeStatus(b *models.Booking, next Status) (changed bool) {
	if Status(b.Status) == next {
		return false
	}
	b.Status = string(next)
	return true
}
