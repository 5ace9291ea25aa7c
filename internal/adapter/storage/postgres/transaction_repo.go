package postgres

import (
	"context"
	"errors"
	"fmt"

	"secure-wallet-core/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository. The transactions
// table is append-only; status transitions are the only mutation.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, reference_id, sender_wallet_id, receiver_wallet_id, amount, currency,
	type, status, description, client_ip, signature, created_at, processed_at`

// Create inserts a new transaction within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.ReferenceID, t.SenderWalletID, t.ReceiverWalletID,
		t.Amount, t.Currency, t.Type, t.Status,
		t.Description, t.ClientIP, t.Signature, t.CreatedAt, t.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by its UUID.
func (r *TransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return t, nil
}

// GetByReference fetches a transaction by its idempotency reference.
func (r *TransactionRepo) GetByReference(ctx context.Context, referenceID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference_id = $1`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, referenceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by reference: %w", err)
	}
	return t, nil
}

// ListActiveByWallet returns the ACTIVE transactions where the wallet is
// sender or receiver, ordered by creation time ascending. Reconciliation
// replays this list to recompute the balance.
func (r *TransactionRepo) ListActiveByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE status = $1 AND (receiver_wallet_id = $2 OR sender_wallet_id = $2)
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, domain.TransactionStatusActive, walletID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by wallet: %w", err)
	}
	defer rows.Close()

	var result []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return result, nil
}

// UpdateStatus transitions a transaction's status within a database
// transaction. Processed timestamp is stamped on terminal transitions.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error {
	query := `UPDATE transactions SET status = $1, processed_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found: %s", id)
	}
	return nil
}

// CountWithMissingWallets counts transactions referencing wallets that do not
// exist.
func (r *TransactionRepo) CountWithMissingWallets(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions t
		LEFT JOIN wallets wr ON wr.id = t.receiver_wallet_id
		LEFT JOIN wallets ws ON ws.id = t.sender_wallet_id
		WHERE wr.id IS NULL OR (t.sender_wallet_id IS NOT NULL AND ws.id IS NULL)`

	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions with missing wallets: %w", err)
	}
	return count, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.ReferenceID, &t.SenderWalletID, &t.ReceiverWalletID,
		&t.Amount, &t.Currency, &t.Type, &t.Status,
		&t.Description, &t.ClientIP, &t.Signature, &t.CreatedAt, &t.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}
