package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	domain "github.com/BruksfildServices01/salon-booking/internal/domain/salon"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs   *audit.Logger
	salons domain.Repository
}

func NewAuditLogsHandler(logs *audit.Logger, salons domain.Repository) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, salons: salons}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	salonID, ok := idParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	// --------------------------------------------------
	// Only the owner reads a salon's trail
	// --------------------------------------------------

	s, err := h.salons.Get(ctx, salonID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if !s.OwnedBy(currentUser(c)) {
		httperr.Respond(c, domain.ErrNotOwner)
		return
	}

	page := queryInt(c, "page", 1)
	if page <= 0 {
		page = 1
	}

	limit := queryInt(c, "limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			f.From = from
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			f.To = to.Add(24 * time.Hour)
		}
	}

	logs, total, err := h.logs.List(ctx, salonID, f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
