package service

import (
	"context"
	"encoding/json"
	"time"

	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"
	"secure-wallet-core/pkg/apperror"

	"github.com/rs/zerolog"
)

// MonitorConfig parametrizes the sliding-window abuse detection rules.
// MaxRequestsPerSubject caps in-window requests per (subject, source IP)
// pair; a request from a fresh IP starts with its own budget.
type MonitorConfig struct {
	Window                      time.Duration
	MaxRequestsPerSubject       int64
	MaxRequestsPerIP            int64
	BruteForceThreshold         int64
	DistributedIPThreshold      int64
	EnumerationSubjectThreshold int64
}

// WindowSecurityMonitor implements ports.SecurityMonitor over a sliding
// window of (subject, IP, eventType) counters. Rate limits are evaluated
// per (subject, IP) pair and per-IP independently; either breach rejects
// a request. Cross-IP rotation against one subject is the distributed
// and enumeration detections' job, not the rate limiter's.
type WindowSecurityMonitor struct {
	windows ports.SecurityWindowStore
	audit   ports.AuditRecorder
	cfg     MonitorConfig
	log     zerolog.Logger
}

// NewWindowSecurityMonitor creates a new security monitor.
func NewWindowSecurityMonitor(windows ports.SecurityWindowStore, audit ports.AuditRecorder, cfg MonitorConfig, log zerolog.Logger) *WindowSecurityMonitor {
	return &WindowSecurityMonitor{windows: windows, audit: audit, cfg: cfg, log: log}
}

// AuthorizeRequest records an OTP request event and rejects it when a
// window threshold or the enumeration rule is breached. The rejection
// reason surfaces generically; the detail lives in the audit trail.
func (m *WindowSecurityMonitor) AuthorizeRequest(ctx context.Context, actor domain.ActorContext, subjectID string) error {
	counts, err := m.windows.RecordEvent(ctx, domain.SecurityEventOTPRequest, subjectID, actor.ClientIP, m.cfg.Window)
	if err != nil {
		return err
	}

	if counts.PairCount > m.cfg.MaxRequestsPerSubject || counts.IPCount > m.cfg.MaxRequestsPerIP {
		m.log.Warn().
			Str("subject_id", subjectID).
			Str("ip", actor.ClientIP).
			Int64("pair_count", counts.PairCount).
			Int64("ip_count", counts.IPCount).
			Msg("otp request rate limit breached")
		return apperror.ErrRateLimited()
	}

	if counts.DistinctSubjects > m.cfg.EnumerationSubjectThreshold {
		det := domain.Detection{
			Type:      domain.DetectionAccountEnumeration,
			Risk:      domain.RiskHigh,
			Action:    domain.ActionManualReview,
			ClientIP:  actor.ClientIP,
			Observed:  counts.DistinctSubjects,
			Threshold: m.cfg.EnumerationSubjectThreshold,
		}
		m.recordDetection(ctx, actor, subjectID, det)
		return apperror.ErrSuspiciousActivity()
	}

	return nil
}

// RecordVerification records a verification outcome and evaluates the
// brute-force and distributed-attack rules on failures.
func (m *WindowSecurityMonitor) RecordVerification(ctx context.Context, actor domain.ActorContext, subjectID string, success bool) []domain.Detection {
	event := domain.SecurityEventVerifyFailure
	if success {
		event = domain.SecurityEventVerifySuccess
	}
	counts, err := m.windows.RecordEvent(ctx, event, subjectID, actor.ClientIP, m.cfg.Window)
	if err != nil {
		m.log.Warn().Err(err).Str("subject_id", subjectID).Msg("recording verification event failed")
		return nil
	}
	if success {
		return nil
	}

	var detections []domain.Detection

	if counts.PairCount > m.cfg.BruteForceThreshold {
		risk := domain.RiskHigh
		action := domain.ActionTemporaryLockout
		if counts.PairCount > 2*m.cfg.BruteForceThreshold {
			risk = domain.RiskCritical
			action = domain.ActionManualReview
		}
		detections = append(detections, domain.Detection{
			Type:      domain.DetectionBruteForce,
			Risk:      risk,
			Action:    action,
			SubjectID: subjectID,
			ClientIP:  actor.ClientIP,
			Observed:  counts.PairCount,
			Threshold: m.cfg.BruteForceThreshold,
		})
	}

	if counts.DistinctIPs > m.cfg.DistributedIPThreshold {
		detections = append(detections, domain.Detection{
			Type:      domain.DetectionDistributedAttack,
			Risk:      domain.RiskCritical,
			Action:    domain.ActionTemporaryLockout,
			SubjectID: subjectID,
			Observed:  counts.DistinctIPs,
			Threshold: m.cfg.DistributedIPThreshold,
		})
	}

	for _, det := range detections {
		m.recordDetection(ctx, actor, subjectID, det)
	}
	return detections
}

// recordDetection audits a detection as a suspicious-activity event,
// separate from ordinary OTP audit events.
func (m *WindowSecurityMonitor) recordDetection(ctx context.Context, actor domain.ActorContext, subjectID string, det domain.Detection) {
	m.log.Warn().
		Str("detection", string(det.Type)).
		Str("risk", string(det.Risk)).
		Str("action", string(det.Action)).
		Str("subject_id", subjectID).
		Str("ip", actor.ClientIP).
		Int64("observed", det.Observed).
		Int64("threshold", det.Threshold).
		Msg("suspicious activity detected")

	detail, _ := json.Marshal(det)
	m.audit.RecordEvent(ctx, &domain.AuditTrail{
		Entity:        "User",
		EntityID:      subjectID,
		Op:            domain.AuditOpSuspiciousActivity,
		SourceIP:      actor.ClientIP,
		SessionID:     actor.SessionID,
		UserID:        actor.UserID,
		After:         string(detail),
		Sensitive:     true,
		Risk:          det.Risk,
		CorrelationID: actor.RequestID,
		Success:       false,
		ErrorDetail:   string(det.Type),
	})
}
