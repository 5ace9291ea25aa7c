package postgres

import (
	"context"
	"errors"
	"fmt"

	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet into the database.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, user_id, account_number, balance, currency, salt, signature, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.UserID, w.AccountNumber, w.Balance, w.Currency,
		w.Salt, w.Signature, w.Status, w.Version, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID.
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT id, user_id, account_number, balance, currency, salt, signature, status, version, created_at, updated_at
		FROM wallets WHERE id = $1`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.UserID, &w.AccountNumber, &w.Balance, &w.Currency,
		&w.Salt, &w.Signature, &w.Status, &w.Version, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetByAccountNumber fetches a wallet by its account number.
func (r *WalletRepo) GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.Wallet, error) {
	query := `SELECT id, user_id, account_number, balance, currency, salt, signature, status, version, created_at, updated_at
		FROM wallets WHERE account_number = $1`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, accountNumber).Scan(
		&w.ID, &w.UserID, &w.AccountNumber, &w.Balance, &w.Currency,
		&w.Salt, &w.Signature, &w.Status, &w.Version, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by account number: %w", err)
	}
	return w, nil
}

// ExistsByAccountNumber reports whether an account number is already taken.
func (r *WalletRepo) ExistsByAccountNumber(ctx context.Context, accountNumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wallets WHERE account_number = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, accountNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("check account number exists: %w", err)
	}
	return exists, nil
}

// UpdateBalance updates a wallet's balance and signature within a transaction,
// guarded by the expected version. RowsAffected == 0 means another writer
// bumped the version first; the caller retries with a fresh read.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal, signature string, expectedVersion int64) error {
	query := `UPDATE wallets SET balance = $1, signature = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND version = $4`

	tag, err := tx.Exec(ctx, query, balance, signature, walletID, expectedVersion)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrVersionConflict
	}
	return nil
}

// CountOrphaned counts wallets whose owning user no longer exists.
func (r *WalletRepo) CountOrphaned(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM wallets w
		LEFT JOIN users u ON u.id = w.user_id
		WHERE u.id IS NULL`

	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orphaned wallets: %w", err)
	}
	return count, nil
}
