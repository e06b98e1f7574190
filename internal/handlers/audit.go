package handlers

import (
	"gridops/internal/middleware"
	"gridops/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// audit writes a best-effort trail entry for a successful mutation.
func (h *Handler) audit(c *gin.Context, entity string, entityID uuid.UUID, action, details string) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return
	}
	h.Store.RecordAudit(c.Request.Context(), models.AuditLog{
		UserID:   ident.UserID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	})
}

// ListAudit returns the caller's own audit trail.
func (h *Handler) ListAudit(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	logs, err := h.Store.ListAudit(c.Request.Context(), ident.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, logs)
}
