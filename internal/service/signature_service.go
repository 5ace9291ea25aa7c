package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	saltLen  = 32 // 256-bit per-wallet HMAC key
	nonceLen = 16 // 128-bit replay nonce
)

// HMACSignatureEngine implements ports.SignatureEngine using HMAC-SHA256
// keyed by per-wallet salts. Compromise of one wallet's salt cannot forge
// another wallet's operations.
type HMACSignatureEngine struct {
	now func() time.Time
}

// NewHMACSignatureEngine creates a new HMAC-SHA256 signature engine.
func NewHMACSignatureEngine() *HMACSignatureEngine {
	return &HMACSignatureEngine{now: time.Now}
}

// Sign computes HMAC-SHA256 of data keyed by salt.
// Returns lowercase hex-encoded signature, always 64 characters.
func (e *HMACSignatureEngine) Sign(data, salt string) string {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks if signature matches HMAC-SHA256(salt, data).
// Uses constant-time comparison and returns false on any failure.
func (e *HMACSignatureEngine) Verify(data, signature, salt string) bool {
	if signature == "" {
		return false
	}
	expected := e.Sign(data, salt)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignTimeBound signs data together with an absolute expiry and appends the
// expiry in cleartext: "<signature>:<expiryEpochMillis>".
func (e *HMACSignatureEngine) SignTimeBound(data, salt string, validity time.Duration) string {
	expiry := e.now().Add(validity).UnixMilli()
	sig := e.Sign(data+"|"+strconv.FormatInt(expiry, 10), salt)
	return sig + ":" + strconv.FormatInt(expiry, 10)
}

// VerifyTimeBound rejects malformed tokens, expired tokens, and signature
// mismatches. Returns false on any failure, never an error.
func (e *HMACSignatureEngine) VerifyTimeBound(data, token, salt string) bool {
	sig, expiryStr, ok := strings.Cut(token, ":")
	if !ok || sig == "" {
		return false
	}
	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil {
		return false
	}
	if e.now().UnixMilli() > expiry {
		return false
	}
	expected := e.Sign(data+"|"+expiryStr, salt)
	return hmac.Equal([]byte(expected), []byte(sig))
}

// Fingerprint computes an unkeyed SHA-256 digest over the request data,
// timestamp and nonce. Used for replay-attack detection; not verified
// against a key and not reversible.
func (e *HMACSignatureEngine) Fingerprint(requestData string, timestamp int64, nonce string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%d|%s", requestData, timestamp, nonce))
	return hex.EncodeToString(sum[:])
}

// GenerateSalt returns 256 bits of cryptographically secure randomness,
// base64 encoded.
func (e *HMACSignatureEngine) GenerateSalt() (string, error) {
	return randomString(saltLen)
}

// GenerateNonce returns 128 bits of cryptographically secure randomness,
// base64 encoded.
func (e *HMACSignatureEngine) GenerateNonce() (string, error) {
	return randomString(nonceLen)
}

// TransactionPayload builds the canonical signing input for a transaction.
// Format: walletId|userId|amount|timestamp
func (e *HMACSignatureEngine) TransactionPayload(walletID, userID uuid.UUID, amount decimal.Decimal, timestamp int64) string {
	return fmt.Sprintf("%s|%s|%s|%d", walletID, userID, amount.String(), timestamp)
}

// WalletOperationPayload builds the canonical signing input for a wallet
// operation. Format: walletId|operation|additionalData
func (e *HMACSignatureEngine) WalletOperationPayload(walletID uuid.UUID, operation, additionalData string) string {
	return fmt.Sprintf("%s|%s|%s", walletID, operation, additionalData)
}

// OTPPayload builds the canonical signing input for an OTP event.
// Format: userId|purpose|clientIp|timestamp
func (e *HMACSignatureEngine) OTPPayload(subjectID, purpose, clientIP string, timestamp int64) string {
	return fmt.Sprintf("%s|%s|%s|%d", subjectID, purpose, clientIP, timestamp)
}

func randomString(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
