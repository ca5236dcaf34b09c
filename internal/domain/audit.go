package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records an administrative override. An override is never
// committed without one.
type AuditEntry struct {
	ID         uuid.UUID     `json:"id"`
	RequestID  uuid.UUID     `json:"request_id"`
	Actor      uuid.UUID     `json:"actor"`
	PrevStatus RequestStatus `json:"prev_status"`
	NewStatus  RequestStatus `json:"new_status"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
