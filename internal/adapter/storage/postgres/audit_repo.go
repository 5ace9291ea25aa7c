package postgres

import (
	"context"
	"fmt"
	"strings"

	"secure-wallet-core/internal/core/domain"
	"secure-wallet-core/internal/core/ports"
)

// AuditRepo implements ports.AuditRepository. The audit_trails table is
// insert-only; there is no update or delete path.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

const auditColumns = `id, audit_id, entity_type, entity_id, operation,
	user_id, session_id, source_ip, before_state, after_state,
	transaction_id, transaction_type, transaction_amount, transaction_currency,
	sensitive, financial_data, pii, source, classification, risk,
	correlation_id, success, error_detail, created_at`

// Create inserts a new audit trail record.
func (r *AuditRepo) Create(ctx context.Context, rec *domain.AuditTrail) error {
	query := `INSERT INTO audit_trails (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.AuditID, rec.Entity, rec.EntityID, rec.Op,
		rec.UserID, rec.SessionID, rec.SourceIP, rec.Before, rec.After,
		rec.TransactionID, rec.TransactionType, rec.TransactionAmount, rec.TransactionCurrency,
		rec.Sensitive, rec.FinancialData, rec.PII, rec.Source, rec.Classification, rec.Risk,
		rec.CorrelationID, rec.Success, rec.ErrorDetail, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit trail: %w", err)
	}
	return nil
}

// Query returns audit records matching the filter, newest first.
func (r *AuditRepo) Query(ctx context.Context, q ports.AuditQuery) ([]domain.AuditTrail, error) {
	var (
		conditions []string
		args       []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Entity != "" {
		conditions = append(conditions, "entity_type = "+arg(q.Entity))
	}
	if q.EntityID != "" {
		conditions = append(conditions, "entity_id = "+arg(q.EntityID))
	}
	if q.From != nil {
		conditions = append(conditions, "created_at >= "+arg(*q.From))
	}
	if q.To != nil {
		conditions = append(conditions, "created_at <= "+arg(*q.To))
	}

	query := `SELECT ` + auditColumns + ` FROM audit_trails`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if q.Limit > 0 {
		query += " LIMIT " + arg(q.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit trails: %w", err)
	}
	defer rows.Close()

	var result []domain.AuditTrail
	for rows.Next() {
		var rec domain.AuditTrail
		err := rows.Scan(
			&rec.ID, &rec.AuditID, &rec.Entity, &rec.EntityID, &rec.Op,
			&rec.UserID, &rec.SessionID, &rec.SourceIP, &rec.Before, &rec.After,
			&rec.TransactionID, &rec.TransactionType, &rec.TransactionAmount, &rec.TransactionCurrency,
			&rec.Sensitive, &rec.FinancialData, &rec.PII, &rec.Source, &rec.Classification, &rec.Risk,
			&rec.CorrelationID, &rec.Success, &rec.ErrorDetail, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit trail: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit trails: %w", err)
	}
	return result, nil
}
