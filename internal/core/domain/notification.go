package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a queued user-facing message. Delivery channels are
// external to this core; the entity exists so notification lifecycle events
// are audited like every other mutation.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Channel   string    `json:"channel"` // EMAIL, SMS, PUSH
	Subject   string    `json:"subject"`
	Body      string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// DescribeForAudit implements Auditable.
func (n *Notification) DescribeForAudit() AuditDescriptor {
	return AuditDescriptor{
		EntityType: "Notification",
		EntityID:   n.ID.String(),
		Extra: map[string]string{
			"channel": n.Channel,
		},
		PII: true,
	}
}
