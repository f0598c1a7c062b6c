package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	ucBooking "github.com/BruksfildServices01/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler serves the public booking flow: availability, booking
// creation and lookup.
type BookingHandler struct {
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
	get          *ucBooking.GetBooking
}

func NewBookingHandler(
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
	get *ucBooking.GetBooking,
) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		create:       create,
		get:          get,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	SalonID       uint    `json:"salon_id"`
	ServiceID     uint    `json:"service_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone *string `json:"customer_phone"`
	BookingDate   string  `json:"booking_date"`
	BookingTime   string  `json:"booking_time"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), salonID, c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		SalonID:       req.SalonID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		BookingDate:   req.BookingDate,
		BookingTime:   req.BookingTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      b.ID,
		"message": "Booking created successfully",
		"booking": b,
	})
}

// ======================================================
// GET
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	bookingID, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}
