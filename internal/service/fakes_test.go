package service

import (
	"context"
	"sort"
	"sync"

	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes for exercising service logic without a
// database. Only the behavior the services rely on is modelled.

type fakeTx struct {
	pgx.Tx
}

func (*fakeTx) Commit(context.Context) error   { return nil }
func (*fakeTx) Rollback(context.Context) error { return nil }

type fakeTransactor struct{}

func (*fakeTransactor) Begin(context.Context) (pgx.Tx, error) { return &fakeTx{}, nil }

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByMobile(_ context.Context, mobile string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Mobile == mobile {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) ExistsByIDNumber(_ context.Context, idNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.IDNumber == idNumber {
			return true, nil
		}
	}
	return false, nil
}

type fakeWalletRepo struct {
	mu       sync.Mutex
	wallets  map[uuid.UUID]*domain.Wallet
	orphaned int64
	// conflicts forces UpdateBalance to report a version conflict the
	// given number of times before behaving normally.
	conflicts int
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *fakeWalletRepo) Create(_ context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *w
	r.wallets[w.ID] = &copied
	return nil
}

func (r *fakeWalletRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	copied := *w
	return &copied, nil
}

func (r *fakeWalletRepo) GetByAccountNumber(_ context.Context, accountNumber string) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wallets {
		if w.AccountNumber == accountNumber {
			copied := *w
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeWalletRepo) ExistsByAccountNumber(_ context.Context, accountNumber string) (bool, error) {
	w, _ := r.GetByAccountNumber(context.Background(), accountNumber)
	return w != nil, nil
}

func (r *fakeWalletRepo) UpdateBalance(_ context.Context, _ pgx.Tx, walletID uuid.UUID, balance decimal.Decimal, signature string, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conflicts > 0 {
		r.conflicts--
		return ports.ErrVersionConflict
	}
	w, ok := r.wallets[walletID]
	if !ok {
		return pgx.ErrNoRows
	}
	if w.Version != expectedVersion {
		return ports.ErrVersionConflict
	}
	w.Balance = balance
	w.Signature = signature
	w.Version++
	return nil
}

func (r *fakeWalletRepo) CountOrphaned(context.Context) (int64, error) {
	return r.orphaned, nil
}

type fakeTransactionRepo struct {
	mu      sync.Mutex
	txns    []*domain.Transaction
	invalid int64
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{}
}

func (r *fakeTransactionRepo) Create(_ context.Context, _ pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *t
	r.txns = append(r.txns, &copied)
	return nil
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.txns {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) GetByReference(_ context.Context, referenceID string) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.txns {
		if t.ReferenceID == referenceID {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) ListActiveByWallet(_ context.Context, walletID uuid.UUID) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Transaction
	for _, t := range r.txns {
		if t.Status != domain.TransactionStatusActive {
			continue
		}
		if t.ReceiverWalletID == walletID || (t.SenderWalletID != nil && *t.SenderWalletID == walletID) {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeTransactionRepo) UpdateStatus(_ context.Context, _ pgx.Tx, id uuid.UUID, status domain.TransactionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.txns {
		if t.ID == id {
			t.Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeTransactionRepo) CountWithMissingWallets(context.Context) (int64, error) {
	return r.invalid, nil
}
