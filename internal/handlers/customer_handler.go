package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/customers"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

// CustomerHandler answers whether a legacy customer code is known. A nil
// directory treats every code as unknown.
type CustomerHandler struct {
	directory customers.Directory
}

func NewCustomerHandler(directory customers.Directory) *CustomerHandler {
	return &CustomerHandler{directory: directory}
}

func (h *CustomerHandler) Validate(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	valid := false
	if h.directory != nil && customers.ValidCode(code) {
		ok, err := h.directory.Contains(c.Request.Context(), code)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		valid = ok
	}

	c.JSON(http.StatusOK, gin.H{
		"code":  code,
		"valid": valid,
	})
}
