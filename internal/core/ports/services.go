package ports

import (
	"context"
	"time"

	"secure-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SignatureEngine handles HMAC-SHA256 signing and verification keyed by
// per-wallet salts. Canonicalization is the caller's responsibility; the
// engine only accepts already-ordered, delimiter-joined strings.
type SignatureEngine interface {
	Sign(data, salt string) string
	Verify(data, signature, salt string) bool
	// SignTimeBound embeds an absolute expiry into the signed payload and
	// returns a token of the form "<signature>:<expiryEpochMillis>".
	SignTimeBound(data, salt string, validity time.Duration) string
	VerifyTimeBound(data, token, salt string) bool
	// Fingerprint is a one-way digest over request data, used for replay
	// detection. Not keyed, not reversible.
	Fingerprint(requestData string, timestamp int64, nonce string) string
	GenerateSalt() (string, error)
	GenerateNonce() (string, error)
	TransactionPayload(walletID, userID uuid.UUID, amount decimal.Decimal, timestamp int64) string
	WalletOperationPayload(walletID uuid.UUID, operation, additionalData string) string
	OTPPayload(subjectID, purpose, clientIP string, timestamp int64) string
}

// PINManager handles wallet PIN policy, hashing and generation.
type PINManager interface {
	ValidatePIN(pin string) error
	HashPIN(pin, salt string) (string, error)
	// VerifyPIN returns false on any mismatch or internal failure; it
	// never returns an error so callers cannot distinguish "failed" from
	// "errored".
	VerifyPIN(pin, storedHash, salt string) bool
	GenerateSecurePIN(length int) (string, error)
}

// OTPService issues and verifies one-time passcodes for step-up
// authentication.
type OTPService interface {
	Request(ctx context.Context, actor domain.ActorContext, subjectID, purpose string) (string, error)
	Verify(ctx context.Context, actor domain.ActorContext, subjectID, purpose, code string) (bool, domain.OTPVerifyOutcome)
}

// SecurityMonitor enforces rate limits and detects abuse patterns over
// sliding time windows.
type SecurityMonitor interface {
	// AuthorizeRequest records an OTP request event and rejects it when
	// the subject or the client IP breached its window threshold, or when
	// an enumeration pattern is detected.
	AuthorizeRequest(ctx context.Context, actor domain.ActorContext, subjectID string) error
	// RecordVerification records a verification outcome and returns any
	// triggered detections. Detections are audited by the monitor itself.
	RecordVerification(ctx context.Context, actor domain.ActorContext, subjectID string, success bool) []domain.Detection
}

// AuditRecorder captures entity lifecycle events into immutable audit
// records. Persistence is best-effort: a failed audit write is logged and
// swallowed, never propagated to the caller.
type AuditRecorder interface {
	// RecordCreate / RecordUpdate / RecordDelete return the generated
	// audit identifier so callers can stamp the owning entity.
	RecordCreate(ctx context.Context, actor domain.ActorContext, entity domain.Auditable) string
	RecordUpdate(ctx context.Context, actor domain.ActorContext, before, after domain.Auditable) string
	RecordDelete(ctx context.Context, actor domain.ActorContext, entity domain.Auditable) string
	// RecordEvent persists a pre-built record (OTP and security events).
	RecordEvent(ctx context.Context, record *domain.AuditTrail)
	Query(ctx context.Context, q AuditQuery) ([]domain.AuditTrail, error)
}

// ReconcileReport is the outcome of recomputing a wallet balance from its
// ACTIVE transaction history.
type ReconcileReport struct {
	WalletID   uuid.UUID       `json:"wallet_id"`
	Stored     decimal.Decimal `json:"stored_balance"`
	Computed   decimal.Decimal `json:"computed_balance"`
	Credits    int             `json:"credits"`
	Debits     int             `json:"debits"`
	Consistent bool            `json:"consistent"`
}

// IntegrityReport counts referential integrity violations. Nothing is
// deleted or repaired automatically.
type IntegrityReport struct {
	OrphanedWallets     int64 `json:"orphaned_wallets"`
	InvalidTransactions int64 `json:"invalid_transactions"`
}

// LedgerValidator performs pre-persistence constraint checks and ledger
// reconciliation.
type LedgerValidator interface {
	ValidateUser(ctx context.Context, user *domain.User) error
	ValidateWallet(ctx context.Context, wallet *domain.Wallet) error
	ValidateTransaction(ctx context.Context, txn *domain.Transaction) error
	Reconcile(ctx context.Context, walletID uuid.UUID) (*ReconcileReport, error)
	CheckReferentialIntegrity(ctx context.Context) (*IntegrityReport, error)
}

// DepositRequest credits a wallet from outside the system.
type DepositRequest struct {
	ReferenceID string
	WalletID    uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// WithdrawRequest debits a wallet into a settlement wallet. Payout rails
// beyond the settlement wallet live outside this core.
type WithdrawRequest struct {
	ReferenceID        string
	WalletID           uuid.UUID
	SettlementWalletID uuid.UUID
	Amount             decimal.Decimal
	Currency           string
	OTPCode            string
	Description        string
}

// TransferRequest moves funds between two wallets of the same currency.
type TransferRequest struct {
	ReferenceID      string
	SenderWalletID   uuid.UUID
	ReceiverWalletID uuid.UUID
	Amount           decimal.Decimal
	Currency         string
	OTPCode          string
	Description      string
}

// WalletService orchestrates balance-affecting operations:
// constraint-validate, sign, OTP-gate sensitive actions, persist with
// optimistic concurrency, audit.
type WalletService interface {
	Deposit(ctx context.Context, actor domain.ActorContext, req DepositRequest) (*domain.Transaction, error)
	Withdraw(ctx context.Context, actor domain.ActorContext, req WithdrawRequest) (*domain.Transaction, error)
	Transfer(ctx context.Context, actor domain.ActorContext, req TransferRequest) (*domain.Transaction, error)
}
