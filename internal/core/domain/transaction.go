package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeTransfer   TransactionType = "TRANSFER"
	TransactionTypeReversal   TransactionType = "REVERSAL"
)

// TransactionStatus represents the lifecycle state of a transaction.
// Only ACTIVE transactions count toward wallet balances.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusActive    TransactionStatus = "ACTIVE"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

// Transaction is an immutable ledger entry. A nil SenderWalletID means funds
// entered the system from outside (deposit/top-up). Rows are never deleted;
// cancellation and failure are status transitions.
type Transaction struct {
	ID               uuid.UUID         `json:"id"`
	ReferenceID      string            `json:"reference_id"` // Unique idempotency key
	SenderWalletID   *uuid.UUID        `json:"sender_wallet_id,omitempty"`
	ReceiverWalletID uuid.UUID         `json:"receiver_wallet_id"`
	Amount           decimal.Decimal   `json:"amount"`
	Currency         string            `json:"currency"`
	Type             TransactionType   `json:"type"`
	Status           TransactionStatus `json:"status"`
	Description      string            `json:"description,omitempty"`
	ClientIP         string            `json:"client_ip,omitempty"`
	Signature        string            `json:"-"`
	CreatedAt        time.Time         `json:"created_at"`
	ProcessedAt      *time.Time        `json:"processed_at,omitempty"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusActive ||
		t.Status == TransactionStatusFailed ||
		t.Status == TransactionStatusCancelled
}

// Credits returns true if the transaction credits the given wallet.
func (t *Transaction) Credits(walletID uuid.UUID) bool {
	return t.Status == TransactionStatusActive && t.ReceiverWalletID == walletID
}

// Debits returns true if the transaction debits the given wallet.
func (t *Transaction) Debits(walletID uuid.UUID) bool {
	return t.Status == TransactionStatusActive &&
		t.SenderWalletID != nil && *t.SenderWalletID == walletID
}

// DescribeForAudit implements Auditable.
func (t *Transaction) DescribeForAudit() AuditDescriptor {
	return AuditDescriptor{
		EntityType: "Transaction",
		EntityID:   t.ID.String(),
		Extra: map[string]string{
			"reference_id": t.ReferenceID,
			"type":         string(t.Type),
			"amount":       t.Amount.String(),
			"currency":     t.Currency,
			"status":       string(t.Status),
		},
		Sensitive:     true,
		FinancialData: true,
	}
}
