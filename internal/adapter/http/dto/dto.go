package dto

import (
	"time"

	"secure-wallet-core/internal/core/domain"

	"github.com/shopspring/decimal"
)

// DepositRequest is the request body for crediting a wallet from outside.
type DepositRequest struct {
	ReferenceID string `json:"reference_id" binding:"required,max=100,safe_id"`
	WalletID    string `json:"wallet_id" binding:"required,uuid"`
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required,len=3"`
	Description string `json:"description" binding:"max=255"`
}

// WithdrawRequest is the request body for debiting a wallet into a
// settlement wallet. OTP code is required.
type WithdrawRequest struct {
	ReferenceID        string `json:"reference_id" binding:"required,max=100,safe_id"`
	WalletID           string `json:"wallet_id" binding:"required,uuid"`
	SettlementWalletID string `json:"settlement_wallet_id" binding:"required,uuid"`
	Amount             string `json:"amount" binding:"required"`
	Currency           string `json:"currency" binding:"required,len=3"`
	OTPCode            string `json:"otp_code" binding:"required,numeric"`
	Description        string `json:"description" binding:"max=255"`
}

// TransferRequest is the request body for a wallet-to-wallet transfer.
// OTP code is required.
type TransferRequest struct {
	ReferenceID      string `json:"reference_id" binding:"required,max=100,safe_id"`
	SenderWalletID   string `json:"sender_wallet_id" binding:"required,uuid"`
	ReceiverWalletID string `json:"receiver_wallet_id" binding:"required,uuid"`
	Amount           string `json:"amount" binding:"required"`
	Currency         string `json:"currency" binding:"required,len=3"`
	OTPCode          string `json:"otp_code" binding:"required,numeric"`
	Description      string `json:"description" binding:"max=255"`
}

// OTPRequestRequest is the request body for issuing a step-up challenge.
type OTPRequestRequest struct {
	SubjectID string `json:"subject_id" binding:"required,uuid"`
	Purpose   string `json:"purpose" binding:"required,max=32,safe_id"`
}

// OTPVerifyRequest is the request body for verifying a challenge.
type OTPVerifyRequest struct {
	SubjectID string `json:"subject_id" binding:"required,uuid"`
	Purpose   string `json:"purpose" binding:"required,max=32,safe_id"`
	Code      string `json:"code" binding:"required,numeric"`
}

// OTPVerifyResponse carries only the verification verdict. Failure reasons
// are recorded in the audit trail, never returned to the caller.
type OTPVerifyResponse struct {
	Verified bool `json:"verified"`
}

// TransactionResponse is the response body for processed transactions.
type TransactionResponse struct {
	ID               string  `json:"id"`
	ReferenceID      string  `json:"reference_id"`
	SenderWalletID   *string `json:"sender_wallet_id,omitempty"`
	ReceiverWalletID string  `json:"receiver_wallet_id"`
	Amount           string  `json:"amount"`
	Currency         string  `json:"currency"`
	Type             string  `json:"type"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
	ProcessedAt      *string `json:"processed_at,omitempty"`
}

// ToTransactionResponse maps a domain transaction to its response body.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:               t.ID.String(),
		ReferenceID:      t.ReferenceID,
		ReceiverWalletID: t.ReceiverWalletID.String(),
		Amount:           t.Amount.String(),
		Currency:         t.Currency,
		Type:             string(t.Type),
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.SenderWalletID != nil {
		s := t.SenderWalletID.String()
		resp.SenderWalletID = &s
	}
	if t.ProcessedAt != nil {
		s := t.ProcessedAt.UTC().Format(time.RFC3339)
		resp.ProcessedAt = &s
	}
	return resp
}

// ParseAmount parses a decimal amount string from a request body.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}
