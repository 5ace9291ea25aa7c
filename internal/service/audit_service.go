package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuditRecorderService implements ports.AuditRecorder. Persistence is
// fire-and-forget: a failed audit write must never fail or roll back the
// primary operation, so it is logged and swallowed here.
type AuditRecorderService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewAuditRecorder creates a new audit recorder.
// If repo is nil, audit records are only written to the logger.
func NewAuditRecorder(repo ports.AuditRepository, log zerolog.Logger) *AuditRecorderService {
	return &AuditRecorderService{repo: repo, log: log, now: time.Now}
}

// RecordCreate captures a pre-create lifecycle event and returns the
// generated audit identifier for stamping the entity.
func (s *AuditRecorderService) RecordCreate(ctx context.Context, actor domain.ActorContext, entity domain.Auditable) string {
	rec := s.build(actor, domain.AuditOpCreate, nil, entity)
	s.persist(rec)
	return rec.AuditID
}

// RecordUpdate captures a pre-update lifecycle event. When the caller does
// not hold true prior state, before may equal after; the snapshot is then
// legitimately symmetric.
func (s *AuditRecorderService) RecordUpdate(ctx context.Context, actor domain.ActorContext, before, after domain.Auditable) string {
	rec := s.build(actor, domain.AuditOpUpdate, before, after)
	s.persist(rec)
	return rec.AuditID
}

// RecordDelete captures a pre-delete lifecycle event.
func (s *AuditRecorderService) RecordDelete(ctx context.Context, actor domain.ActorContext, entity domain.Auditable) string {
	rec := s.build(actor, domain.AuditOpDelete, entity, nil)
	s.persist(rec)
	return rec.AuditID
}

// RecordEvent persists a pre-built record, filling defaults.
func (s *AuditRecorderService) RecordEvent(ctx context.Context, record *domain.AuditTrail) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.AuditID == "" {
		record.AuditID = newAuditID()
	}
	if record.Source == "" {
		record.Source = domain.AuditSourceSystem
	}
	if record.Classification == "" {
		record.Classification = domain.ClassificationInternal
	}
	if record.Risk == "" {
		record.Risk = domain.RiskLow
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now().UTC()
	}
	s.persist(record)
}

// Query exposes the read-only audit surface consumed by compliance tooling.
func (s *AuditRecorderService) Query(ctx context.Context, q ports.AuditQuery) ([]domain.AuditTrail, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.Query(ctx, q)
}

func (s *AuditRecorderService) build(actor domain.ActorContext, op domain.AuditOperation, before, after domain.Auditable) *domain.AuditTrail {
	subject := after
	if subject == nil {
		subject = before
	}
	desc := subject.DescribeForAudit()

	rec := &domain.AuditTrail{
		ID:             uuid.New(),
		AuditID:        newAuditID(),
		Entity:         desc.EntityType,
		EntityID:       desc.EntityID,
		Op:             op,
		UserID:         actor.UserID,
		SessionID:      actor.SessionID,
		SourceIP:       actor.ClientIP,
		Before:         snapshot(before),
		After:          snapshot(after),
		Sensitive:      desc.Sensitive,
		FinancialData:  desc.FinancialData,
		PII:            desc.PII,
		Source:         domain.AuditSourceSystem,
		Classification: domain.ClassificationInternal,
		Risk:           domain.RiskLow,
		CorrelationID:  actor.RequestID,
		Success:        true,
		CreatedAt:      s.now().UTC(),
	}
	if desc.Sensitive {
		rec.Classification = domain.ClassificationConfidential
	}
	if txn, ok := subject.(*domain.Transaction); ok {
		rec.TransactionID = &txn.ID
		rec.TransactionType = string(txn.Type)
		rec.TransactionAmount = txn.Amount.String()
		rec.TransactionCurrency = txn.Currency
	}
	return rec
}

// persist writes the record asynchronously. Failures are logged, never
// propagated: business operations do not block on audit availability.
func (s *AuditRecorderService) persist(rec *domain.AuditTrail) {
	go func() {
		s.log.Info().
			Str("audit_id", rec.AuditID).
			Str("entity", rec.Entity).
			Str("entity_id", rec.EntityID).
			Str("op", string(rec.Op)).
			Str("ip", rec.SourceIP).
			Bool("success", rec.Success).
			Msg("audit")

		if s.repo != nil {
			if err := s.repo.Create(context.Background(), rec); err != nil {
				s.log.Warn().Err(err).Str("audit_id", rec.AuditID).Msg("failed to persist audit record")
			}
		}
	}()
}

// snapshot serializes an entity as opaque structured text.
func snapshot(entity domain.Auditable) string {
	if entity == nil {
		return ""
	}
	b, err := json.Marshal(entity)
	if err != nil {
		return fmt.Sprintf("unserializable: %v", err)
	}
	return string(b)
}

func newAuditID() string {
	return "AUD-" + uuid.NewString()
}
