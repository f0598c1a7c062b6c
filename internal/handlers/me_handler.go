package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

type MeHandler struct {
	auth   *auth.Service
	salons *ucSalon.ListOwnedSalons
}

func NewMeHandler(svc *auth.Service, salons *ucSalon.ListOwnedSalons) *MeHandler {
	return &MeHandler{auth: svc, salons: salons}
}

// GetMe returns the caller plus the ids of the salons they manage.
func (h *MeHandler) GetMe(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.auth.Me(ctx, currentUser(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	owned, err := h.salons.Execute(ctx, user.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	salonIDs := make([]uint, 0, len(owned))
	for _, s := range owned {
		salonIDs = append(salonIDs, s.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"salon_ids": salonIDs,
	})
}
