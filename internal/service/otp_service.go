package service

import (
	"context"
	"fmt"
	"time"

	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"
	"secure-wallet-core/pkg/apperror"

	"github.com/rs/zerolog"
)

// OTPConfig controls challenge issuance.
type OTPConfig struct {
	Length      int
	TTL         time.Duration
	MaxAttempts int
}

// OTPLifecycleService implements ports.OTPService. Challenge state machine:
// issued, then exactly one of verified, exhausted or expired; all terminal.
type OTPLifecycleService struct {
	store   ports.OTPStore
	monitor ports.SecurityMonitor
	sig     ports.SignatureEngine
	audit   ports.AuditRecorder
	cfg     OTPConfig
	log     zerolog.Logger
	now     func() time.Time
}

// NewOTPLifecycleService creates a new OTP service.
func NewOTPLifecycleService(
	store ports.OTPStore,
	monitor ports.SecurityMonitor,
	sig ports.SignatureEngine,
	audit ports.AuditRecorder,
	cfg OTPConfig,
	log zerolog.Logger,
) *OTPLifecycleService {
	return &OTPLifecycleService{
		store:   store,
		monitor: monitor,
		sig:     sig,
		audit:   audit,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// Request issues a new challenge after consulting the security monitor.
// Rejections surface generically; the reason is recorded in the audit trail.
func (s *OTPLifecycleService) Request(ctx context.Context, actor domain.ActorContext, subjectID, purpose string) (string, error) {
	if err := s.monitor.AuthorizeRequest(ctx, actor, subjectID); err != nil {
		s.auditOTP(ctx, actor, subjectID, purpose, domain.AuditOpOTPGenerate, false, err.Error())
		return "", err
	}

	code, err := randomDigits(s.cfg.Length)
	if err != nil {
		return "", apperror.ErrCrypto(err)
	}

	now := s.now().UTC()
	challenge := &domain.OTPChallenge{
		SubjectID:    subjectID,
		Purpose:      purpose,
		Code:         code,
		IssuedAt:     now,
		ExpiresAt:    now.Add(s.cfg.TTL),
		AttemptsLeft: s.cfg.MaxAttempts,
	}
	if err := s.store.Put(ctx, challenge); err != nil {
		s.auditOTP(ctx, actor, subjectID, purpose, domain.AuditOpOTPGenerate, false, "store failure")
		return "", apperror.ErrStore(err)
	}

	s.auditOTP(ctx, actor, subjectID, purpose, domain.AuditOpOTPGenerate, true, "")
	s.log.Info().Str("subject_id", subjectID).Str("purpose", purpose).Msg("otp challenge issued")
	return code, nil
}

// Verify evaluates a verification attempt. It fails closed: any missing,
// mismatched, exhausted or expired challenge yields false, as does any
// internal failure.
func (s *OTPLifecycleService) Verify(ctx context.Context, actor domain.ActorContext, subjectID, purpose, code string) (bool, domain.OTPVerifyOutcome) {
	outcome, remaining, err := s.store.Consume(ctx, subjectID, purpose, code)
	if err != nil {
		s.log.Error().Err(err).Str("subject_id", subjectID).Msg("otp store failure during verification")
		s.auditOTP(ctx, actor, subjectID, purpose, domain.AuditOpOTPVerify, false, "store failure")
		return false, domain.OTPOutcomeNotFound
	}

	if outcome == domain.OTPOutcomeVerified {
		s.auditOTP(ctx, actor, subjectID, purpose, domain.AuditOpOTPVerify, true, "")
		s.monitor.RecordVerification(ctx, actor, subjectID, true)
		return true, outcome
	}

	attempt := s.cfg.MaxAttempts - remaining
	s.auditOTP(ctx, actor, subjectID, purpose, domain.AuditOpOTPVerify, false,
		fmt.Sprintf("%s (attempt %d of %d)", outcome, attempt, s.cfg.MaxAttempts))
	s.monitor.RecordVerification(ctx, actor, subjectID, false)
	return false, outcome
}

// auditOTP emits an ordinary OTP audit event. The correlation id is a
// replay-detection fingerprint over the request data.
func (s *OTPLifecycleService) auditOTP(ctx context.Context, actor domain.ActorContext, subjectID, purpose string, op domain.AuditOperation, success bool, detail string) {
	ts := s.now().UnixMilli()
	fingerprint := s.sig.Fingerprint(s.sig.OTPPayload(subjectID, purpose, actor.ClientIP, ts), ts, actor.RequestID)

	s.audit.RecordEvent(ctx, &domain.AuditTrail{
		Entity:        "OTPChallenge",
		EntityID:      subjectID,
		Op:            op,
		UserID:        actor.UserID,
		SessionID:     actor.SessionID,
		SourceIP:      actor.ClientIP,
		After:         fmt.Sprintf(`{"purpose":%q}`, purpose),
		Sensitive:     true,
		CorrelationID: fingerprint,
		Success:       success,
		ErrorDetail:   detail,
	})
}
