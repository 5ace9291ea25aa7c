package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACSignatureEngine_SignAndVerify(t *testing.T) {
	eng := NewHMACSignatureEngine()
	salt := "per-wallet-salt"
	payload := "6f2c3f9e|user-1|250.00|1708092000"

	signature := eng.Sign(payload, salt)

	// Should be lowercase hex
	assert.Regexp(t, `^[0-9a-f]{64}$`, signature, "signature should be 64-char lowercase hex (SHA-256)")

	assert.True(t, eng.Verify(payload, signature, salt))
}

func TestHMACSignatureEngine_VerifyFails_WrongSalt(t *testing.T) {
	eng := NewHMACSignatureEngine()
	payload := "test payload"

	signature := eng.Sign(payload, "correct-salt")
	assert.False(t, eng.Verify(payload, signature, "wrong-salt"))
}

func TestHMACSignatureEngine_VerifyFails_TamperedPayload(t *testing.T) {
	eng := NewHMACSignatureEngine()
	salt := "my-salt"

	signature := eng.Sign("original payload", salt)
	assert.False(t, eng.Verify("tampered payload", signature, salt))
}

func TestHMACSignatureEngine_VerifyFails_EmptySignature(t *testing.T) {
	eng := NewHMACSignatureEngine()
	assert.False(t, eng.Verify("payload", "", "salt"))
}

func TestHMACSignatureEngine_DeterministicSign(t *testing.T) {
	eng := NewHMACSignatureEngine()

	sig1 := eng.Sign("data", "salt")
	sig2 := eng.Sign("data", "salt")

	assert.Equal(t, sig1, sig2, "same salt+payload should produce same signature")
}

func TestHMACSignatureEngine_SaltIsolation(t *testing.T) {
	eng := NewHMACSignatureEngine()

	sigA := eng.Sign("data", "wallet-a-salt")
	sigB := eng.Sign("data", "wallet-b-salt")

	assert.NotEqual(t, sigA, sigB, "signatures must not be portable across wallets")
}

func TestHMACSignatureEngine_TimeBound_Valid(t *testing.T) {
	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	eng := &HMACSignatureEngine{now: func() time.Time { return clock }}

	token := eng.SignTimeBound("sensitive-op", "salt", 5*time.Minute)
	assert.Regexp(t, `^[0-9a-f]{64}:\d+$`, token)

	assert.True(t, eng.VerifyTimeBound("sensitive-op", token, "salt"))
}

func TestHMACSignatureEngine_TimeBound_Expired(t *testing.T) {
	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	eng := &HMACSignatureEngine{now: func() time.Time { return clock }}

	token := eng.SignTimeBound("sensitive-op", "salt", 5*time.Minute)

	// Advance past the validity window
	clock = clock.Add(5*time.Minute + time.Millisecond)
	assert.False(t, eng.VerifyTimeBound("sensitive-op", token, "salt"))
}

func TestHMACSignatureEngine_TimeBound_TamperedExpiry(t *testing.T) {
	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	eng := &HMACSignatureEngine{now: func() time.Time { return clock }}

	token := eng.SignTimeBound("sensitive-op", "salt", time.Minute)
	sig, _, ok := cutToken(token)
	require.True(t, ok)

	// Extend expiry without re-signing
	forged := sig + ":" + "99999999999999"
	assert.False(t, eng.VerifyTimeBound("sensitive-op", forged, "salt"))
}

func TestHMACSignatureEngine_TimeBound_Malformed(t *testing.T) {
	eng := NewHMACSignatureEngine()

	assert.False(t, eng.VerifyTimeBound("data", "", "salt"))
	assert.False(t, eng.VerifyTimeBound("data", "no-separator", "salt"))
	assert.False(t, eng.VerifyTimeBound("data", ":12345", "salt"))
	assert.False(t, eng.VerifyTimeBound("data", "abc:not-a-number", "salt"))
}

func TestHMACSignatureEngine_Fingerprint(t *testing.T) {
	eng := NewHMACSignatureEngine()

	fp1 := eng.Fingerprint("request-data", 1708092000, "nonce1")
	fp2 := eng.Fingerprint("request-data", 1708092000, "nonce1")
	fp3 := eng.Fingerprint("request-data", 1708092000, "nonce2")

	assert.Regexp(t, `^[0-9a-f]{64}$`, fp1)
	assert.Equal(t, fp1, fp2)
	assert.NotEqual(t, fp1, fp3, "different nonce should change the fingerprint")
}

func TestHMACSignatureEngine_GenerateSalt(t *testing.T) {
	eng := NewHMACSignatureEngine()

	salt1, err := eng.GenerateSalt()
	require.NoError(t, err)
	salt2, err := eng.GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.Len(t, salt1, 43) // 32 bytes, base64 raw URL encoded
}

func TestHMACSignatureEngine_GenerateNonce(t *testing.T) {
	eng := NewHMACSignatureEngine()

	nonce, err := eng.GenerateNonce()
	require.NoError(t, err)
	assert.Len(t, nonce, 22) // 16 bytes, base64 raw URL encoded
}

func TestHMACSignatureEngine_CanonicalPayloads(t *testing.T) {
	eng := NewHMACSignatureEngine()
	walletID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	userID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	txn := eng.TransactionPayload(walletID, userID, decimal.RequireFromString("250.50"), 1708092000)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555|aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee|250.5|1708092000", txn)

	op := eng.WalletOperationPayload(walletID, "SUSPEND", "manual review")
	assert.Equal(t, "11111111-2222-3333-4444-555555555555|SUSPEND|manual review", op)

	otp := eng.OTPPayload("subject-1", "TRANSFER", "10.0.0.1", 1708092000)
	assert.Equal(t, "subject-1|TRANSFER|10.0.0.1|1708092000", otp)
}

func cutToken(token string) (sig, expiry string, ok bool) {
	for i := 0; i < len(token); i++ {
		if token[i] == ':' {
			return token[:i], token[i+1:], true
		}
	}
	return "", "", false
}
