package handler

import (
	"strconv"
	"time"

	"secure-wallet-core/internal/core/ports"
	"secure-wallet-core/pkg/apperror"
	"secure-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultAuditLimit = 100

// AuditHandler exposes the read-only audit query surface.
type AuditHandler struct {
	auditSvc ports.AuditRecorder
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditSvc ports.AuditRecorder) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

// Query handles GET /api/v1/audit.
// Filters: entity, entity_id, from, to (RFC3339), limit.
func (h *AuditHandler) Query(c *gin.Context) {
	q := ports.AuditQuery{
		Entity:   c.Query("entity"),
		EntityID: c.Query("entity_id"),
		Limit:    defaultAuditLimit,
	}

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, apperror.ErrInvalidField("from", "must be RFC3339"))
			return
		}
		q.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, apperror.ErrInvalidField("to", "must be RFC3339"))
			return
		}
		q.To = &t
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			response.Error(c, apperror.ErrInvalidField("limit", "must be between 1 and 1000"))
			return
		}
		q.Limit = n
	}

	records, err := h.auditSvc.Query(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, records)
}
