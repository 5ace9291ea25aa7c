package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns wallets. Authentication and profile management live outside this
// core; the entity exists here for uniqueness validation, referential
// integrity checks and audit capture.
type User struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	IDNumber  string    `json:"id_number"`
	PINHash   string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DescribeForAudit implements Auditable.
func (u *User) DescribeForAudit() AuditDescriptor {
	return AuditDescriptor{
		EntityType: "User",
		EntityID:   u.ID.String(),
		Extra: map[string]string{
			"email":  u.Email,
			"mobile": u.Mobile,
		},
		PII: true,
	}
}
