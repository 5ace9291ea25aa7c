package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"
	"secure-wallet-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	purposeWithdrawal = "WITHDRAWAL"
	purposeTransfer   = "TRANSFER"
)

// WalletOperationService implements ports.WalletService. Every
// balance-affecting operation is constraint-validated, signed with the
// wallet salt, OTP-gated when sensitive, persisted under optimistic
// concurrency and audited.
type WalletOperationService struct {
	wallets    ports.WalletRepository
	txs        ports.TransactionRepository
	ledger     ports.LedgerValidator
	sig        ports.SignatureEngine
	otp        ports.OTPService
	audit      ports.AuditRecorder
	transactor ports.DBTransactor
	maxRetries int
	log        zerolog.Logger
	now        func() time.Time
}

// NewWalletOperationService creates a new wallet operation service.
// maxRetries bounds the optimistic-concurrency retry loop.
func NewWalletOperationService(
	wallets ports.WalletRepository,
	txs ports.TransactionRepository,
	ledger ports.LedgerValidator,
	sig ports.SignatureEngine,
	otp ports.OTPService,
	audit ports.AuditRecorder,
	transactor ports.DBTransactor,
	maxRetries int,
	log zerolog.Logger,
) *WalletOperationService {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &WalletOperationService{
		wallets:    wallets,
		txs:        txs,
		ledger:     ledger,
		sig:        sig,
		otp:        otp,
		audit:      audit,
		transactor: transactor,
		maxRetries: maxRetries,
		log:        log,
		now:        time.Now,
	}
}

// Deposit credits a wallet from outside the system. Not OTP-gated.
func (s *WalletOperationService) Deposit(ctx context.Context, actor domain.ActorContext, req ports.DepositRequest) (*domain.Transaction, error) {
	txn := &domain.Transaction{
		ID:               uuid.New(),
		ReferenceID:      req.ReferenceID,
		ReceiverWalletID: req.WalletID,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Type:             domain.TransactionTypeDeposit,
		Status:           domain.TransactionStatusPending,
		Description:      req.Description,
		ClientIP:         actor.ClientIP,
	}
	if err := s.ledger.ValidateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return s.execute(ctx, actor, txn)
}

// Withdraw debits a wallet into a settlement wallet. Sensitive: requires a
// verified OTP challenge for the owning user.
func (s *WalletOperationService) Withdraw(ctx context.Context, actor domain.ActorContext, req ports.WithdrawRequest) (*domain.Transaction, error) {
	sender := req.WalletID
	txn := &domain.Transaction{
		ID:               uuid.New(),
		ReferenceID:      req.ReferenceID,
		SenderWalletID:   &sender,
		ReceiverWalletID: req.SettlementWalletID,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Type:             domain.TransactionTypeWithdrawal,
		Status:           domain.TransactionStatusPending,
		Description:      req.Description,
		ClientIP:         actor.ClientIP,
	}
	if err := s.ledger.ValidateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	if err := s.verifyStepUp(ctx, actor, req.WalletID, purposeWithdrawal, req.OTPCode); err != nil {
		return nil, err
	}
	return s.execute(ctx, actor, txn)
}

// Transfer moves funds between two wallets of the same currency.
// Sensitive: requires a verified OTP challenge for the sending user.
func (s *WalletOperationService) Transfer(ctx context.Context, actor domain.ActorContext, req ports.TransferRequest) (*domain.Transaction, error) {
	sender := req.SenderWalletID
	txn := &domain.Transaction{
		ID:               uuid.New(),
		ReferenceID:      req.ReferenceID,
		SenderWalletID:   &sender,
		ReceiverWalletID: req.ReceiverWalletID,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Type:             domain.TransactionTypeTransfer,
		Status:           domain.TransactionStatusPending,
		Description:      req.Description,
		ClientIP:         actor.ClientIP,
	}
	if err := s.ledger.ValidateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	if err := s.verifyStepUp(ctx, actor, req.SenderWalletID, purposeTransfer, req.OTPCode); err != nil {
		return nil, err
	}
	return s.execute(ctx, actor, txn)
}

// verifyStepUp resolves the wallet owner and verifies the OTP challenge.
// Failures surface generically; the detail is already in the audit trail.
func (s *WalletOperationService) verifyStepUp(ctx context.Context, actor domain.ActorContext, walletID uuid.UUID, purpose, code string) error {
	wallet, err := s.wallets.GetByID(ctx, walletID)
	if err != nil {
		return apperror.ErrDatabase(err)
	}
	if wallet == nil {
		return apperror.ErrNotFound("wallet")
	}
	ok, _ := s.otp.Verify(ctx, actor, wallet.UserID.String(), purpose, code)
	if !ok {
		return apperror.ErrOperationNotPermitted()
	}
	return nil
}

// execute persists the transaction and the balance updates under optimistic
// concurrency, retrying version conflicts up to maxRetries before surfacing
// a transient-conflict error.
func (s *WalletOperationService) execute(ctx context.Context, actor domain.ActorContext, txn *domain.Transaction) (*domain.Transaction, error) {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		result, err := s.tryExecute(ctx, actor, txn)
		if errors.Is(err, ports.ErrVersionConflict) {
			s.log.Debug().
				Str("reference_id", txn.ReferenceID).
				Int("attempt", attempt).
				Msg("wallet version conflict, retrying")
			continue
		}
		return result, err
	}
	return nil, apperror.ErrTransientConflict()
}

func (s *WalletOperationService) tryExecute(ctx context.Context, actor domain.ActorContext, txn *domain.Transaction) (*domain.Transaction, error) {
	receiver, err := s.wallets.GetByID(ctx, txn.ReceiverWalletID)
	if err != nil {
		return nil, apperror.ErrDatabase(err)
	}
	if receiver == nil {
		return nil, apperror.ErrNotFound("receiver wallet")
	}

	var sender *domain.Wallet
	if txn.SenderWalletID != nil {
		sender, err = s.wallets.GetByID(ctx, *txn.SenderWalletID)
		if err != nil {
			return nil, apperror.ErrDatabase(err)
		}
		if sender == nil {
			return nil, apperror.ErrNotFound("sender wallet")
		}
		// Balance may have moved since validation time.
		if sender.Balance.LessThan(txn.Amount) {
			return nil, apperror.ErrInsufficientFunds()
		}
	}

	// The debited wallet signs the operation; deposits are signed by the
	// receiving wallet. Canonical format: walletId|userId|amount|timestamp.
	primary := receiver
	if sender != nil {
		primary = sender
	}
	ts := s.now().UTC()
	payload := s.sig.TransactionPayload(primary.ID, primary.UserID, txn.Amount, ts.Unix())
	signature := s.sig.Sign(payload, primary.Salt)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	txn.Status = domain.TransactionStatusActive
	txn.Signature = signature
	txn.CreatedAt = ts
	txn.ProcessedAt = &ts

	if err := s.txs.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("create transaction: %w", err))
	}

	if sender != nil {
		newBalance := sender.Balance.Sub(txn.Amount)
		if err := s.wallets.UpdateBalance(ctx, dbTx, sender.ID, newBalance, signature, sender.Version); err != nil {
			if errors.Is(err, ports.ErrVersionConflict) {
				return nil, err
			}
			return nil, apperror.ErrDatabase(fmt.Errorf("debit sender: %w", err))
		}
	}

	newReceiverBalance := receiver.Balance.Add(txn.Amount)
	if err := s.wallets.UpdateBalance(ctx, dbTx, receiver.ID, newReceiverBalance, signature, receiver.Version); err != nil {
		if errors.Is(err, ports.ErrVersionConflict) {
			return nil, err
		}
		return nil, apperror.ErrDatabase(fmt.Errorf("credit receiver: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabase(fmt.Errorf("commit tx: %w", err))
	}

	s.recordAudits(ctx, actor, txn, sender, receiver, signature)

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("type", string(txn.Type)).
		Str("amount", txn.Amount.String()).
		Str("currency", txn.Currency).
		Msg("wallet operation processed")
	return txn, nil
}

// recordAudits emits create/update audit events. The wallet updates carry
// true before-state because this service holds the pre-image.
func (s *WalletOperationService) recordAudits(ctx context.Context, actor domain.ActorContext, txn *domain.Transaction, sender, receiver *domain.Wallet, signature string) {
	s.audit.RecordCreate(ctx, actor, txn)

	if sender != nil {
		after := *sender
		after.Balance = sender.Balance.Sub(txn.Amount)
		after.Signature = signature
		after.Version = sender.Version + 1
		s.audit.RecordUpdate(ctx, actor, sender, &after)
	}

	after := *receiver
	after.Balance = receiver.Balance.Add(txn.Amount)
	after.Signature = signature
	after.Version = receiver.Version + 1
	s.audit.RecordUpdate(ctx, actor, receiver, &after)
}
