package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

// SalonHandler serves the public salon directory.
type SalonHandler struct {
	list      *ucSalon.ListSalons
	detail    *ucSalon.GetSalonDetail
	catalogue *ucSalon.ListCatalogue
	images    *ucSalon.Images
}

func NewSalonHandler(
	list *ucSalon.ListSalons,
	detail *ucSalon.GetSalonDetail,
	catalogue *ucSalon.ListCatalogue,
	images *ucSalon.Images,
) *SalonHandler {
	return &SalonHandler{
		list:      list,
		detail:    detail,
		catalogue: catalogue,
		images:    images,
	}
}

func (h *SalonHandler) List(c *gin.Context) {
	res, err := h.list.Execute(c.Request.Context(), domain.ListFilter{
		Cidade:  c.Query("cidade"),
		Regiao:  c.Query("regiao"),
		Search:  c.Query("search"),
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", domain.DefaultPerPage),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *SalonHandler) Get(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	d, err := h.detail.Execute(c.Request.Context(), salonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, d)
}

// Catalogue lists the global service catalogue; ?bio_diamond=true narrows it.
func (h *SalonHandler) Catalogue(c *gin.Context) {
	bio, _ := strconv.ParseBool(c.Query("bio_diamond"))

	services, err := h.catalogue.Execute(c.Request.Context(), bio)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *SalonHandler) Images(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	images, err := h.images.List(c.Request.Context(), salonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, images)
}
