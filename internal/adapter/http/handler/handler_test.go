package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"secure-wallet-core/internal/adapter/http/dto"
	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"
	"secure-wallet-core/internal/core/ports/mocks"
	"secure-wallet-core/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(t *testing.T, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

// --- Wallet Handler Tests ---

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	walletID := uuid.New()
	txID := uuid.New()
	now := time.Now()

	mockWallet.EXPECT().Deposit(gomock.Any(), gomock.Any(), ports.DepositRequest{
		ReferenceID: "dep-001",
		WalletID:    walletID,
		Amount:      decimal.RequireFromString("250.50"),
		Currency:    "KES",
	}).Return(&domain.Transaction{
		ID:               txID,
		ReferenceID:      "dep-001",
		ReceiverWalletID: walletID,
		Amount:           decimal.RequireFromString("250.50"),
		Currency:         "KES",
		Type:             domain.TransactionTypeDeposit,
		Status:           domain.TransactionStatusActive,
		CreatedAt:        now,
		ProcessedAt:      &now,
	}, nil)

	w, c := postJSON(t, dto.DepositRequest{
		ReferenceID: "dep-001",
		WalletID:    walletID.String(),
		Amount:      "250.50",
		Currency:    "KES",
	})

	h.Deposit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, txID.String(), data["id"])
	assert.Equal(t, "DEPOSIT", data["type"])
	assert.Equal(t, "250.5", data["amount"])
}

func TestDeposit_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	// Empty body => binding error, the service is never called
	w, c := postJSON(t, map[string]string{})

	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeposit_RejectsUnsafeReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	w, c := postJSON(t, dto.DepositRequest{
		ReferenceID: "dep'; DROP TABLE wallets--",
		WalletID:    uuid.NewString(),
		Amount:      "100",
		Currency:    "KES",
	})

	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeposit_BadAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	w, c := postJSON(t, dto.DepositRequest{
		ReferenceID: "dep-001",
		WalletID:    uuid.NewString(),
		Amount:      "not-a-number",
		Currency:    "KES",
	})

	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithdraw_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	walletID := uuid.New()
	settlementID := uuid.New()
	now := time.Now()

	mockWallet.EXPECT().Withdraw(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.Transaction{
		ID:               uuid.New(),
		ReferenceID:      "wd-001",
		SenderWalletID:   &walletID,
		ReceiverWalletID: settlementID,
		Amount:           decimal.RequireFromString("100"),
		Currency:         "KES",
		Type:             domain.TransactionTypeWithdrawal,
		Status:           domain.TransactionStatusActive,
		CreatedAt:        now,
	}, nil)

	w, c := postJSON(t, dto.WithdrawRequest{
		ReferenceID:        "wd-001",
		WalletID:           walletID.String(),
		SettlementWalletID: settlementID.String(),
		Amount:             "100",
		Currency:           "KES",
		OTPCode:            "123456",
	})

	h.Withdraw(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "WITHDRAWAL", data["type"])
	assert.Equal(t, walletID.String(), data["sender_wallet_id"])
}

func TestWithdraw_MissingOTPCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	w, c := postJSON(t, dto.WithdrawRequest{
		ReferenceID:        "wd-001",
		WalletID:           uuid.NewString(),
		SettlementWalletID: uuid.NewString(),
		Amount:             "100",
		Currency:           "KES",
	})

	h.Withdraw(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	senderID := uuid.New()
	receiverID := uuid.New()
	now := time.Now()

	mockWallet.EXPECT().Transfer(gomock.Any(), gomock.Any(), ports.TransferRequest{
		ReferenceID:      "tr-001",
		SenderWalletID:   senderID,
		ReceiverWalletID: receiverID,
		Amount:           decimal.RequireFromString("200"),
		Currency:         "KES",
		OTPCode:          "123456",
	}).Return(&domain.Transaction{
		ID:               uuid.New(),
		ReferenceID:      "tr-001",
		SenderWalletID:   &senderID,
		ReceiverWalletID: receiverID,
		Amount:           decimal.RequireFromString("200"),
		Currency:         "KES",
		Type:             domain.TransactionTypeTransfer,
		Status:           domain.TransactionStatusActive,
		CreatedAt:        now,
	}, nil)

	w, c := postJSON(t, dto.TransferRequest{
		ReferenceID:      "tr-001",
		SenderWalletID:   senderID.String(),
		ReceiverWalletID: receiverID.String(),
		Amount:           "200",
		Currency:         "KES",
		OTPCode:          "123456",
	})

	h.Transfer(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	mockWallet.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientFunds())

	w, c := postJSON(t, dto.TransferRequest{
		ReferenceID:      "tr-001",
		SenderWalletID:   uuid.NewString(),
		ReceiverWalletID: uuid.NewString(),
		Amount:           "999999",
		Currency:         "KES",
		OTPCode:          "123456",
	})

	h.Transfer(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DOM_001", resp["error_code"])
}

func TestTransfer_RejectedChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	mockWallet.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrOperationNotPermitted())

	w, c := postJSON(t, dto.TransferRequest{
		ReferenceID:      "tr-001",
		SenderWalletID:   uuid.NewString(),
		ReceiverWalletID: uuid.NewString(),
		Amount:           "100",
		Currency:         "KES",
		OTPCode:          "000000",
	})

	h.Transfer(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Operation not permitted", resp["message"])
}

// --- OTP Handler Tests ---

func TestOTPRequest_CodeNeverInResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTP := mocks.NewMockOTPService(ctrl)
	h := NewOTPHandler(mockOTP)

	subjectID := uuid.NewString()
	mockOTP.EXPECT().Request(gomock.Any(), gomock.Any(), subjectID, "TRANSFER").Return("482913", nil)

	w, c := postJSON(t, dto.OTPRequestRequest{SubjectID: subjectID, Purpose: "TRANSFER"})

	h.Request(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.NotContains(t, w.Body.String(), "482913")
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SENT", resp["status"])
}

func TestOTPRequest_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTP := mocks.NewMockOTPService(ctrl)
	h := NewOTPHandler(mockOTP)

	subjectID := uuid.NewString()
	mockOTP.EXPECT().Request(gomock.Any(), gomock.Any(), subjectID, "TRANSFER").
		Return("", apperror.ErrRateLimited())

	w, c := postJSON(t, dto.OTPRequestRequest{SubjectID: subjectID, Purpose: "TRANSFER"})

	h.Request(c)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestOTPVerify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTP := mocks.NewMockOTPService(ctrl)
	h := NewOTPHandler(mockOTP)

	subjectID := uuid.NewString()
	mockOTP.EXPECT().Verify(gomock.Any(), gomock.Any(), subjectID, "TRANSFER", "482913").
		Return(true, domain.OTPOutcomeVerified)

	w, c := postJSON(t, dto.OTPVerifyRequest{SubjectID: subjectID, Purpose: "TRANSFER", Code: "482913"})

	h.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["verified"])
}

func TestOTPVerify_FailureHidesReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOTP := mocks.NewMockOTPService(ctrl)
	h := NewOTPHandler(mockOTP)

	subjectID := uuid.NewString()
	mockOTP.EXPECT().Verify(gomock.Any(), gomock.Any(), subjectID, "TRANSFER", "000000").
		Return(false, domain.OTPOutcomeExhausted)

	w, c := postJSON(t, dto.OTPVerifyRequest{SubjectID: subjectID, Purpose: "TRANSFER", Code: "000000"})

	h.Verify(c)

	// Same shape as a mismatch: the outcome detail stays server-side
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["verified"])
	assert.NotContains(t, w.Body.String(), "EXHAUSTED")
}

// --- Ledger Handler Tests ---

func TestReconcile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerValidator(ctrl)
	h := NewLedgerHandler(mockLedger)

	walletID := uuid.New()
	mockLedger.EXPECT().Reconcile(gomock.Any(), walletID).Return(&ports.ReconcileReport{
		WalletID:   walletID,
		Stored:     decimal.RequireFromString("300"),
		Computed:   decimal.RequireFromString("300"),
		Credits:    2,
		Debits:     1,
		Consistent: true,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: walletID.String()}}

	h.Reconcile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["consistent"])
}

func TestReconcile_BadWalletID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewLedgerHandler(mocks.NewMockLedgerValidator(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.Reconcile(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntegrity_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerValidator(ctrl)
	h := NewLedgerHandler(mockLedger)

	mockLedger.EXPECT().CheckReferentialIntegrity(gomock.Any()).Return(&ports.IntegrityReport{
		OrphanedWallets:     0,
		InvalidTransactions: 0,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.Integrity(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Audit Handler Tests ---

func TestAuditQuery_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditRecorder(ctrl)
	h := NewAuditHandler(mockAudit)

	entityID := uuid.NewString()
	mockAudit.EXPECT().Query(gomock.Any(), ports.AuditQuery{
		Entity:   "Wallet",
		EntityID: entityID,
		Limit:    50,
	}).Return([]domain.AuditTrail{{AuditID: "AUD-1", Entity: "Wallet", EntityID: entityID}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?entity=Wallet&entity_id="+entityID+"&limit=50", nil)

	h.Query(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, 1)
}

func TestAuditQuery_BadTimeFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuditHandler(mocks.NewMockAuditRecorder(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?from=yesterday", nil)

	h.Query(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuditQuery_LimitOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuditHandler(mocks.NewMockAuditRecorder(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?limit=5000", nil)

	h.Query(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
