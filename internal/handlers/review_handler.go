package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reviewdomain "github.com/BruksfildServices01/salon-booking/internal/domain/review"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	ucReview "github.com/BruksfildServices01/salon-booking/internal/usecase/review"
)

type ReviewHandler struct {
	list   *ucReview.ListReviews
	create *ucReview.CreateReview
}

func NewReviewHandler(list *ucReview.ListReviews, create *ucReview.CreateReview) *ReviewHandler {
	return &ReviewHandler{list: list, create: create}
}

type CreateReviewRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Rating        *int   `json:"rating"`
	Title         string `json:"title"`
	Comment       string `json:"comment"`
}

func (h *ReviewHandler) List(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	res, err := h.list.Execute(
		c.Request.Context(),
		salonID,
		queryInt(c, "page", 1),
		queryInt(c, "per_page", reviewdomain.DefaultPerPage),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.create.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		SalonID:       salonID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Rating:        req.Rating,
		Title:         req.Title,
		Comment:       req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, r)
}
