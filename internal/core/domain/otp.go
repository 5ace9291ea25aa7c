package domain

import "time"

// OTPChallenge is a short-lived step-up authentication challenge.
// Lifecycle: issued, then exactly one of verified, exhausted or expired.
// All three outcomes are terminal; a challenge is never reused.
type OTPChallenge struct {
	SubjectID    string    `json:"subject_id"`
	Purpose      string    `json:"purpose"` // Free-form operation tag, e.g. "TRANSFER"
	Code         string    `json:"-"`
	IssuedAt     time.Time `json:"issued_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	AttemptsLeft int       `json:"attempts_left"`
}

// OTPVerifyOutcome is the machine-readable reason attached to a
// verification result.
type OTPVerifyOutcome string

const (
	OTPOutcomeVerified     OTPVerifyOutcome = "VERIFIED"
	OTPOutcomeNotFound     OTPVerifyOutcome = "NOT_FOUND"
	OTPOutcomeMismatch     OTPVerifyOutcome = "CODE_MISMATCH"
	OTPOutcomeExhausted    OTPVerifyOutcome = "ATTEMPTS_EXHAUSTED"
	OTPOutcomeExpired      OTPVerifyOutcome = "EXPIRED"
	OTPOutcomeWrongPurpose OTPVerifyOutcome = "PURPOSE_MISMATCH"
)
