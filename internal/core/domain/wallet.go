package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletStatus represents the lifecycle state of a wallet.
type WalletStatus string

const (
	WalletStatusActive    WalletStatus = "ACTIVE"
	WalletStatusSuspended WalletStatus = "SUSPENDED"
	WalletStatusClosed    WalletStatus = "CLOSED"
)

// Wallet is a user's currency account. Balance must always equal the net sum
// of ACTIVE transactions received minus ACTIVE transactions sent.
type Wallet struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	Salt          string          `json:"-"` // Per-wallet HMAC key, base64
	Signature     string          `json:"-"` // Signature of the last operation
	Status        WalletStatus    `json:"status"`
	Version       int64           `json:"-"` // Optimistic concurrency counter
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsActive returns true if the wallet can participate in transactions.
func (w *Wallet) IsActive() bool {
	return w.Status == WalletStatusActive
}

// DescribeForAudit implements Auditable.
func (w *Wallet) DescribeForAudit() AuditDescriptor {
	return AuditDescriptor{
		EntityType: "Wallet",
		EntityID:   w.ID.String(),
		Extra: map[string]string{
			"account_number": w.AccountNumber,
			"currency":       w.Currency,
			"status":         string(w.Status),
		},
		Sensitive:     true,
		FinancialData: true,
	}
}
