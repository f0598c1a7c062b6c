package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

type OfferingHandler struct {
	offerings *ucSalon.Offerings
}

func NewOfferingHandler(offerings *ucSalon.Offerings) *OfferingHandler {
	return &OfferingHandler{offerings: offerings}
}

// --------- Requests ---------

type CreateOfferingRequest struct {
	ServiceID uint     `json:"service_id"`
	Price     *float64 `json:"price"`
	Duration  *int     `json:"duration"`
}

type UpdateOfferingRequest struct {
	Price    *float64 `json:"price,omitempty"`
	Duration *int     `json:"duration,omitempty"`
}

// --------- Handlers ---------

func (h *OfferingHandler) List(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	offerings, err := h.offerings.List(c.Request.Context(), currentUser(c), salonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, offerings)
}

func (h *OfferingHandler) Create(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CreateOfferingRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.offerings.Add(c.Request.Context(), currentUser(c), salonID, ucSalon.OfferingInput{
		ServiceID: req.ServiceID,
		Price:     req.Price,
		Duration:  req.Duration,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, o.ID, "Service added successfully")
}

func (h *OfferingHandler) Update(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}
	offeringID, ok := idParam(c, "offering_id")
	if !ok {
		return
	}

	var req UpdateOfferingRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := h.offerings.Update(c.Request.Context(), currentUser(c), salonID, offeringID, ucSalon.OfferingInput{
		Price:    req.Price,
		Duration: req.Duration,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Service updated successfully")
}

func (h *OfferingHandler) Delete(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}
	offeringID, ok := idParam(c, "offering_id")
	if !ok {
		return
	}

	if err := h.offerings.Delete(c.Request.Context(), currentUser(c), salonID, offeringID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Service deleted successfully")
}
