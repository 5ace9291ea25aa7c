package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditOperation represents the kind of audited lifecycle event.
type AuditOperation string

const (
	AuditOpCreate             AuditOperation = "CREATE"
	AuditOpUpdate             AuditOperation = "UPDATE"
	AuditOpDelete             AuditOperation = "DELETE"
	AuditOpLogin              AuditOperation = "LOGIN"
	AuditOpOTPGenerate        AuditOperation = "OTP_GENERATE"
	AuditOpOTPVerify          AuditOperation = "OTP_VERIFY"
	AuditOpSuspiciousActivity AuditOperation = "SUSPICIOUS_ACTIVITY"
	AuditOpReconcile          AuditOperation = "RECONCILE"
)

// AuditSource identifies where an audited action originated.
type AuditSource string

const (
	AuditSourceSystem AuditSource = "SYSTEM"
	AuditSourceUser   AuditSource = "USER"
	AuditSourceAPI    AuditSource = "API"
)

// AuditClassification labels the confidentiality of an audit record.
type AuditClassification string

const (
	ClassificationInternal     AuditClassification = "INTERNAL"
	ClassificationConfidential AuditClassification = "CONFIDENTIAL"
	ClassificationRestricted   AuditClassification = "RESTRICTED"
)

// Auditable is implemented by every domain entity whose lifecycle is
// captured by the audit trail. Each entity contributes its own natural
// identifying fields instead of the recorder type-switching over a closed
// set.
type Auditable interface {
	DescribeForAudit() AuditDescriptor
}

// AuditDescriptor carries the entity-specific fields an Auditable exposes.
type AuditDescriptor struct {
	EntityType    string
	EntityID      string
	Extra         map[string]string
	Sensitive     bool
	FinancialData bool
	PII           bool
}

// AuditTrail is an immutable record of one lifecycle event. Records are
// created exactly once and never mutated or deleted by the application.
// The audited entity is referenced by type+id only, so records survive
// deletion of the entity itself.
type AuditTrail struct {
	ID       uuid.UUID      `json:"id"`
	AuditID  string         `json:"audit_id"` // Generated business identifier, stamped on the entity
	Entity   string         `json:"entity_type"`
	EntityID string         `json:"entity_id"`
	Op       AuditOperation `json:"operation"`

	// Actor
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	SessionID string     `json:"session_id,omitempty"`
	SourceIP  string     `json:"source_ip,omitempty"`

	// Snapshots, serialized JSON
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`

	// Transaction correlation
	TransactionID       *uuid.UUID `json:"transaction_id,omitempty"`
	TransactionType     string     `json:"transaction_type,omitempty"`
	TransactionAmount   string     `json:"transaction_amount,omitempty"`
	TransactionCurrency string     `json:"transaction_currency,omitempty"`

	// Risk & classification
	Sensitive      bool                `json:"sensitive"`
	FinancialData  bool                `json:"financial_data"`
	PII            bool                `json:"pii"`
	Source         AuditSource         `json:"source"`
	Classification AuditClassification `json:"classification"`
	Risk           RiskLevel           `json:"risk"`

	CorrelationID string    `json:"correlation_id,omitempty"`
	Success       bool      `json:"success"`
	ErrorDetail   string    `json:"error_detail,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ActorContext carries request-scoped actor identity explicitly through call
// boundaries instead of relying on ambient state.
type ActorContext struct {
	RequestID string
	UserID    *uuid.UUID
	SessionID string
	ClientIP  string
}
