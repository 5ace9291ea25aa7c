package ports

import (
	"context"
	"errors"
	"time"

	"secure-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrVersionConflict is returned by WalletRepository.UpdateBalance when the
// expected version no longer matches the stored row. Callers retry with a
// fresh read, bounded by configuration.
var ErrVersionConflict = errors.New("wallet version conflict")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByMobile(ctx context.Context, mobile string) (bool, error)
	ExistsByIDNumber(ctx context.Context, idNumber string) (bool, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside transaction blocks.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.Wallet, error)
	ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error)
	// UpdateBalance performs a compare-and-swap guarded by expectedVersion.
	// Returns ErrVersionConflict when another writer got there first.
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal, signature string, expectedVersion int64) error
	// CountOrphaned counts wallets whose owning user no longer exists.
	CountOrphaned(ctx context.Context) (int64, error)
}

// TransactionRepository defines persistence operations for the append-only
// transaction ledger. There is deliberately no Delete.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	GetByReference(ctx context.Context, referenceID string) (*domain.Transaction, error)
	// ListActiveByWallet returns ACTIVE transactions where the wallet is
	// sender or receiver, ordered by creation time ascending.
	ListActiveByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error
	// CountWithMissingWallets counts transactions referencing wallets that
	// do not exist.
	CountWithMissingWallets(ctx context.Context) (int64, error)
}

// AuditQuery filters the read-only audit surface.
type AuditQuery struct {
	Entity   string
	EntityID string
	From     *time.Time
	To       *time.Time
	Limit    int
}

// AuditRepository defines persistence for audit trail records.
// Records are insert-only; there is no update or delete.
type AuditRepository interface {
	Create(ctx context.Context, record *domain.AuditTrail) error
	Query(ctx context.Context, q AuditQuery) ([]domain.AuditTrail, error)
}

// OTPStore holds ephemeral OTP challenges. One outstanding challenge per
// subject; storage expiry enforces the validity window.
type OTPStore interface {
	Put(ctx context.Context, challenge *domain.OTPChallenge) error
	// Consume atomically evaluates a verification attempt: it checks
	// purpose, expiry and attempt budget, decrements the budget on a code
	// mismatch and deletes the challenge on success. Returns the outcome
	// and the remaining attempts.
	Consume(ctx context.Context, subjectID, purpose, code string) (domain.OTPVerifyOutcome, int, error)
}

// WindowCounts reports sliding-window tallies after recording one event.
type WindowCounts struct {
	SubjectCount     int64 // Events for the subject within the window
	IPCount          int64 // Events for the client IP within the window
	PairCount        int64 // Events for the (subject, IP) pair
	DistinctIPs      int64 // Distinct IPs seen for the subject
	DistinctSubjects int64 // Distinct subjects seen from the IP
}

// SecurityWindowStore keeps the sliding-window event counters used by the
// security monitor. Entries older than the window are expired lazily on the
// next evaluation.
type SecurityWindowStore interface {
	RecordEvent(ctx context.Context, event domain.SecurityEventType, subjectID, clientIP string, window time.Duration) (*WindowCounts, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
