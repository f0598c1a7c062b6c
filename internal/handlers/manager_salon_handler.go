package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	ucSalon "github.com/BruksfildServices01/salon-booking/internal/usecase/salon"
)

// ManagerSalonHandler lets an authenticated owner list, register and edit
// their salons.
type ManagerSalonHandler struct {
	owned  *ucSalon.ListOwnedSalons
	create *ucSalon.CreateSalon
	update *ucSalon.UpdateSalon
}

func NewManagerSalonHandler(
	owned *ucSalon.ListOwnedSalons,
	create *ucSalon.CreateSalon,
	update *ucSalon.UpdateSalon,
) *ManagerSalonHandler {
	return &ManagerSalonHandler{owned: owned, create: create, update: update}
}

// --------- Requests ---------

type CreateSalonRequest struct {
	Codigo    string   `json:"codigo"`
	Nome      string   `json:"nome"`
	Cidade    string   `json:"cidade"`
	Regiao    string   `json:"regiao"`
	Telefone  string   `json:"telefone"`
	Email     string   `json:"email"`
	Website   string   `json:"website"`
	Rua       string   `json:"rua"`
	Porta     string   `json:"porta"`
	CodPostal string   `json:"cod_postal"`
	Pais      string   `json:"pais"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type UpdateSalonRequest struct {
	Nome      *string `json:"nome,omitempty"`
	Telefone  *string `json:"telefone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Website   *string `json:"website,omitempty"`
	Regiao    *string `json:"regiao,omitempty"`
	Cidade    *string `json:"cidade,omitempty"`
	Rua       *string `json:"rua,omitempty"`
	Porta     *string `json:"porta,omitempty"`
	CodPostal *string `json:"cod_postal,omitempty"`
}

// --------- Handlers ---------

func (h *ManagerSalonHandler) List(c *gin.Context) {
	salons, err := h.owned.Execute(c.Request.Context(), currentUser(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, salons)
}

func (h *ManagerSalonHandler) Create(c *gin.Context) {
	var req CreateSalonRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.create.Execute(c.Request.Context(), currentUser(c), ucSalon.CreateSalonInput{
		Codigo:    req.Codigo,
		Nome:      req.Nome,
		Cidade:    req.Cidade,
		Regiao:    req.Regiao,
		Telefone:  req.Telefone,
		Email:     req.Email,
		Website:   req.Website,
		Rua:       req.Rua,
		Porta:     req.Porta,
		CodPostal: req.CodPostal,
		Pais:      req.Pais,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      s.ID,
		"nome":    s.Nome,
		"message": "Salon created successfully",
		"salon":   s,
	})
}

func (h *ManagerSalonHandler) Update(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateSalonRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := h.update.Execute(c.Request.Context(), currentUser(c), salonID, domain.Update{
		Nome:      req.Nome,
		Telefone:  req.Telefone,
		Email:     req.Email,
		Website:   req.Website,
		Regiao:    req.Regiao,
		Cidade:    req.Cidade,
		Rua:       req.Rua,
		Porta:     req.Porta,
		CodPostal: req.CodPostal,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Salon updated successfully")
}
