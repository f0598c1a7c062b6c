package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/export"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ManagerBookingHandler exposes a salon's booking ledger to its owner.
type ManagerBookingHandler struct {
	list   *ucBooking.ListSalonBookings
	status *ucBooking.UpdateBookingStatus
	remove *ucBooking.DeleteBooking
}

func NewManagerBookingHandler(
	list *ucBooking.ListSalonBookings,
	status *ucBooking.UpdateBookingStatus,
	remove *ucBooking.DeleteBooking,
) *ManagerBookingHandler {
	return &ManagerBookingHandler{list: list, status: status, remove: remove}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *ManagerBookingHandler) List(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	_, bookings, err := h.list.Execute(c.Request.Context(), currentUser(c), salonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingList(bookings))
}

// Export streams the same ledger as an Excel workbook.
func (h *ManagerBookingHandler) Export(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	salon, bookings, err := h.list.Execute(c.Request.Context(), currentUser(c), salonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	// Buffer first so a failed export can still answer with a JSON error.
	var buf bytes.Buffer
	if err := export.WriteBookings(&buf, salon.Nome, bookings); err != nil {
		httperr.Respond(c, err)
		return
	}

	filename := fmt.Sprintf("salon-%d-bookings-%s.xlsx", salon.ID, timezone.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ManagerBookingHandler) UpdateStatus(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.status.Execute(c.Request.Context(), currentUser(c), bookingID, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"status":  b.Status,
	})
}

func (h *ManagerBookingHandler) Delete(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), currentUser(c), bookingID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Booking deleted successfully")
}
