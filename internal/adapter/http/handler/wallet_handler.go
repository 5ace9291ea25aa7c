package handler

import (
	"secure-wallet-core/internal/adapter/http/dto"
	"secure-wallet-core/internal/adapter/http/middleware"
	"secure-wallet-core/internal/core/ports"
	"secure-wallet-core/pkg/apperror"
	"secure-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles balance-affecting wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// Deposit handles POST /api/v1/wallets/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidField("body", err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, ok := dto.ParseAmount(req.Amount)
	if !ok {
		response.Error(c, apperror.ErrInvalidField("amount", "must be a decimal number"))
		return
	}

	result, err := h.walletSvc.Deposit(c.Request.Context(), middleware.ActorFrom(c), ports.DepositRequest{
		ReferenceID: req.ReferenceID,
		WalletID:    uuid.MustParse(req.WalletID),
		Amount:      amount,
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToTransactionResponse(result))
}

// Withdraw handles POST /api/v1/wallets/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidField("body", err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, ok := dto.ParseAmount(req.Amount)
	if !ok {
		response.Error(c, apperror.ErrInvalidField("amount", "must be a decimal number"))
		return
	}

	result, err := h.walletSvc.Withdraw(c.Request.Context(), middleware.ActorFrom(c), ports.WithdrawRequest{
		ReferenceID:        req.ReferenceID,
		WalletID:           uuid.MustParse(req.WalletID),
		SettlementWalletID: uuid.MustParse(req.SettlementWalletID),
		Amount:             amount,
		Currency:           req.Currency,
		OTPCode:            req.OTPCode,
		Description:        req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToTransactionResponse(result))
}

// Transfer handles POST /api/v1/wallets/transfer.
func (h *WalletHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidField("body", err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, ok := dto.ParseAmount(req.Amount)
	if !ok {
		response.Error(c, apperror.ErrInvalidField("amount", "must be a decimal number"))
		return
	}

	result, err := h.walletSvc.Transfer(c.Request.Context(), middleware.ActorFrom(c), ports.TransferRequest{
		ReferenceID:      req.ReferenceID,
		SenderWalletID:   uuid.MustParse(req.SenderWalletID),
		ReceiverWalletID: uuid.MustParse(req.ReceiverWalletID),
		Amount:           amount,
		Currency:         req.Currency,
		OTPCode:          req.OTPCode,
		Description:      req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToTransactionResponse(result))
}
