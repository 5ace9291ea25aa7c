package handler

import (
	"secure-wallet-core/internal/core/ports"
	"secure-wallet-core/pkg/apperror"
	"secure-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerHandler exposes reconciliation and referential integrity checks.
// Both endpoints are read-only; mismatches are reported, never repaired.
type LedgerHandler struct {
	ledgerSvc ports.LedgerValidator
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerValidator) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// Reconcile handles GET /api/v1/ledger/wallets/:id/reconcile.
func (h *LedgerHandler) Reconcile(c *gin.Context) {
	walletID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidField("id", "must be a UUID"))
		return
	}

	report, err := h.ledgerSvc.Reconcile(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// Integrity handles GET /api/v1/ledger/integrity.
func (h *LedgerHandler) Integrity(c *gin.Context) {
	report, err := h.ledgerSvc.CheckReferentialIntegrity(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}
