package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math/big"

	"secure-wallet-core/pkg/apperror"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters for PIN hashing. A deliberately different code path
// from HMAC signatures so PIN hashes are not verifiable as signatures and
// vice versa.
const (
	pinIterations = 100_000
	pinKeyLen     = 32
	pinMinLen     = 4
	pinMaxLen     = 6
)

// PBKDF2PINManager implements ports.PINManager using PBKDF2-SHA256 with the
// per-wallet salt.
type PBKDF2PINManager struct{}

// NewPBKDF2PINManager creates a new PIN manager.
func NewPBKDF2PINManager() *PBKDF2PINManager {
	return &PBKDF2PINManager{}
}

// ValidatePIN enforces the PIN policy: 4-6 digits, not all identical, not a
// strictly ascending or descending run across the whole PIN.
func (m *PBKDF2PINManager) ValidatePIN(pin string) error {
	if pin == "" {
		return apperror.ErrInvalidPIN("must not be empty")
	}
	if len(pin) < pinMinLen || len(pin) > pinMaxLen {
		return apperror.ErrInvalidPIN(fmt.Sprintf("length must be %d-%d digits", pinMinLen, pinMaxLen))
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return apperror.ErrInvalidPIN("must contain only digits")
		}
	}
	if isWeakPIN(pin) {
		return apperror.ErrInvalidPIN("too predictable")
	}
	return nil
}

// HashPIN validates then computes a salted PBKDF2-SHA256 digest.
// Deterministic for a fixed (pin, salt) pair. The salt is the wallet's
// base64-encoded salt.
func (m *PBKDF2PINManager) HashPIN(pin, salt string) (string, error) {
	if err := m.ValidatePIN(pin); err != nil {
		return "", err
	}
	saltBytes, err := base64.RawURLEncoding.DecodeString(salt)
	if err != nil {
		return "", apperror.ErrCrypto(fmt.Errorf("decoding salt: %w", err))
	}
	digest := pbkdf2.Key([]byte(pin), saltBytes, pinIterations, pinKeyLen, sha256.New)
	return base64.RawStdEncoding.EncodeToString(digest), nil
}

// VerifyPIN recomputes and compares in constant time. Returns false on any
// empty input or internal failure rather than an error, so callers cannot
// distinguish "verification failed" from "verification errored".
func (m *PBKDF2PINManager) VerifyPIN(pin, storedHash, salt string) bool {
	if pin == "" || storedHash == "" || salt == "" {
		return false
	}
	saltBytes, err := base64.RawURLEncoding.DecodeString(salt)
	if err != nil {
		return false
	}
	stored, err := base64.RawStdEncoding.DecodeString(storedHash)
	if err != nil {
		return false
	}
	digest := pbkdf2.Key([]byte(pin), saltBytes, pinIterations, pinKeyLen, sha256.New)
	return subtle.ConstantTimeCompare(digest, stored) == 1
}

// GenerateSecurePIN produces a cryptographically random digit sequence,
// re-drawing until the result passes the weak-pattern check.
func (m *PBKDF2PINManager) GenerateSecurePIN(length int) (string, error) {
	if length < pinMinLen || length > pinMaxLen {
		return "", apperror.ErrInvalidPIN(fmt.Sprintf("length must be %d-%d digits", pinMinLen, pinMaxLen))
	}
	for {
		pin, err := randomDigits(length)
		if err != nil {
			return "", apperror.ErrCrypto(err)
		}
		if !isWeakPIN(pin) {
			return pin, nil
		}
	}
}

// isWeakPIN reports whether every digit is identical or the whole PIN is a
// strictly ascending or descending run (e.g. 1234, 4321).
func isWeakPIN(pin string) bool {
	allSame, ascending, descending := true, true, true
	for i := 1; i < len(pin); i++ {
		if pin[i] != pin[0] {
			allSame = false
		}
		if pin[i] != pin[i-1]+1 {
			ascending = false
		}
		if pin[i] != pin[i-1]-1 {
			descending = false
		}
	}
	return allSame || ascending || descending
}

func randomDigits(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("reading random digit: %w", err)
		}
		digits[i] = byte('0' + d.Int64())
	}
	return string(digits), nil
}
