package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/booking"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

type OpeningHoursHandler struct {
	get *ucBooking.GetOpeningHours
	set *ucBooking.SetOpeningHours
}

func NewOpeningHoursHandler(get *ucBooking.GetOpeningHours, set *ucBooking.SetOpeningHours) *OpeningHoursHandler {
	return &OpeningHoursHandler{get: get, set: set}
}

// OpeningHoursRequest is keyed by weekday, "0" (Monday) to "6" (Sunday).
type OpeningHoursRequest struct {
	OpeningHours map[string]domain.DayHours `json:"opening_hours"`
}

func (h *OpeningHoursHandler) Get(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	hours, err := h.get.Execute(c.Request.Context(), currentUser(c), salonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"opening_hours": hours})
}

func (h *OpeningHoursHandler) Update(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req OpeningHoursRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.set.Execute(c.Request.Context(), currentUser(c), salonID, req.OpeningHours); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Opening hours updated successfully")
}
