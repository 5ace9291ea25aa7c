package service

import (
	"context"
	"fmt"
	"regexp"

	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"
	"secure-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// LedgerService implements ports.LedgerValidator: pre-persistence constraint
// checks, balance reconciliation against the transaction history, and
// referential integrity reporting.
type LedgerService struct {
	users   ports.UserRepository
	wallets ports.WalletRepository
	txs     ports.TransactionRepository
	audit   ports.AuditRecorder
	log     zerolog.Logger
}

// NewLedgerService creates a new ledger validator.
func NewLedgerService(
	users ports.UserRepository,
	wallets ports.WalletRepository,
	txs ports.TransactionRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *LedgerService {
	return &LedgerService{users: users, wallets: wallets, txs: txs, audit: audit, log: log}
}

// ValidateUser enforces user uniqueness constraints before persistence.
func (s *LedgerService) ValidateUser(ctx context.Context, user *domain.User) error {
	if user.Email == "" {
		return apperror.ErrInvalidField("email", "must not be empty")
	}
	if user.Mobile == "" {
		return apperror.ErrInvalidField("mobile", "must not be empty")
	}
	if exists, err := s.users.ExistsByEmail(ctx, user.Email); err != nil {
		return apperror.ErrDatabase(err)
	} else if exists {
		return apperror.ErrDuplicateField("email")
	}
	if exists, err := s.users.ExistsByMobile(ctx, user.Mobile); err != nil {
		return apperror.ErrDatabase(err)
	} else if exists {
		return apperror.ErrDuplicateField("mobile")
	}
	if user.IDNumber != "" {
		if exists, err := s.users.ExistsByIDNumber(ctx, user.IDNumber); err != nil {
			return apperror.ErrDatabase(err)
		} else if exists {
			return apperror.ErrDuplicateField("id_number")
		}
	}
	return nil
}

// ValidateWallet enforces wallet constraints before persistence.
func (s *LedgerService) ValidateWallet(ctx context.Context, wallet *domain.Wallet) error {
	if wallet.AccountNumber == "" {
		return apperror.ErrInvalidField("account_number", "must not be empty")
	}
	if !currencyPattern.MatchString(wallet.Currency) {
		return apperror.ErrInvalidField("currency", "must be a 3-letter uppercase code")
	}
	if wallet.Balance.IsNegative() {
		return apperror.ErrInvalidField("balance", "must not be negative")
	}
	if exists, err := s.users.Exists(ctx, wallet.UserID); err != nil {
		return apperror.ErrDatabase(err)
	} else if !exists {
		return apperror.ErrInvalidField("user_id", "owning user does not exist")
	}
	if exists, err := s.wallets.ExistsByAccountNumber(ctx, wallet.AccountNumber); err != nil {
		return apperror.ErrDatabase(err)
	} else if exists {
		return apperror.ErrDuplicateField("account_number")
	}
	return nil
}

// ValidateTransaction enforces referential and balance constraints before
// persistence. Insufficient sender balance fails here, before any signature
// or persistence step runs.
func (s *LedgerService) ValidateTransaction(ctx context.Context, txn *domain.Transaction) error {
	if !txn.Amount.IsPositive() {
		return apperror.ErrInvalidField("amount", "must be strictly positive")
	}
	if !currencyPattern.MatchString(txn.Currency) {
		return apperror.ErrInvalidField("currency", "must be a 3-letter uppercase code")
	}
	if txn.ReferenceID == "" {
		return apperror.ErrInvalidField("reference_id", "must not be empty")
	}
	if existing, err := s.txs.GetByReference(ctx, txn.ReferenceID); err != nil {
		return apperror.ErrDatabase(err)
	} else if existing != nil {
		return apperror.ErrDuplicateTransaction()
	}

	receiver, err := s.wallets.GetByID(ctx, txn.ReceiverWalletID)
	if err != nil {
		return apperror.ErrDatabase(err)
	}
	if receiver == nil {
		return apperror.ErrInvalidField("receiver_wallet_id", "wallet does not exist")
	}
	if receiver.Currency != txn.Currency {
		return apperror.ErrInvalidField("currency", "does not match receiver wallet currency")
	}

	if txn.SenderWalletID != nil {
		sender, err := s.wallets.GetByID(ctx, *txn.SenderWalletID)
		if err != nil {
			return apperror.ErrDatabase(err)
		}
		if sender == nil {
			return apperror.ErrInvalidField("sender_wallet_id", "wallet does not exist")
		}
		if !sender.IsActive() {
			return apperror.ErrWalletNotActive()
		}
		if sender.Currency != txn.Currency {
			return apperror.ErrInvalidField("currency", "does not match sender wallet currency")
		}
		if sender.Balance.LessThan(txn.Amount) {
			return apperror.ErrInsufficientFunds()
		}
	}
	return nil
}

// Reconcile recomputes a wallet balance as the sum of ACTIVE transactions
// received minus ACTIVE transactions sent, in creation order. A mismatch is
// logged and audited as a consistency warning; the ledger never silently
// auto-corrects. Correction is an explicit, audited operation.
func (s *LedgerService) Reconcile(ctx context.Context, walletID uuid.UUID) (*ports.ReconcileReport, error) {
	wallet, err := s.wallets.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabase(err)
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	history, err := s.txs.ListActiveByWallet(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabase(err)
	}

	computed := decimal.Zero
	credits, debits := 0, 0
	for i := range history {
		txn := &history[i]
		if txn.Credits(walletID) {
			computed = computed.Add(txn.Amount)
			credits++
		}
		if txn.Debits(walletID) {
			computed = computed.Sub(txn.Amount)
			debits++
		}
	}

	report := &ports.ReconcileReport{
		WalletID:   walletID,
		Stored:     wallet.Balance,
		Computed:   computed,
		Credits:    credits,
		Debits:     debits,
		Consistent: wallet.Balance.Equal(computed),
	}

	if !report.Consistent {
		s.log.Warn().
			Str("wallet_id", walletID.String()).
			Str("stored", wallet.Balance.String()).
			Str("computed", computed.String()).
			Msg("ledger balance mismatch")
		s.audit.RecordEvent(ctx, &domain.AuditTrail{
			Entity:        "Wallet",
			EntityID:      walletID.String(),
			Op:            domain.AuditOpReconcile,
			After:         fmt.Sprintf(`{"stored":%q,"computed":%q}`, wallet.Balance, computed),
			Sensitive:     true,
			FinancialData: true,
			Risk:          domain.RiskHigh,
			Success:       false,
			ErrorDetail:   "stored balance does not match transaction history",
		})
	}
	return report, nil
}

// CheckReferentialIntegrity counts wallets without an owning user and
// transactions referencing non-existent wallets. It reports only; nothing
// is deleted or repaired.
func (s *LedgerService) CheckReferentialIntegrity(ctx context.Context) (*ports.IntegrityReport, error) {
	orphans, err := s.wallets.CountOrphaned(ctx)
	if err != nil {
		return nil, apperror.ErrDatabase(err)
	}
	invalid, err := s.txs.CountWithMissingWallets(ctx)
	if err != nil {
		return nil, apperror.ErrDatabase(err)
	}

	report := &ports.IntegrityReport{
		OrphanedWallets:     orphans,
		InvalidTransactions: invalid,
	}
	if orphans > 0 || invalid > 0 {
		s.log.Warn().
			Int64("orphaned_wallets", orphans).
			Int64("invalid_transactions", invalid).
			Msg("referential integrity violations found")
	}
	return report, nil
}
