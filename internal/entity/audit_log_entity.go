package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records a mutating action for later inspection. Written by the
// audit consumer, never on the request path.
type AuditLog struct {
	Id        uuid.UUID
	Action    string
	UserId    uuid.UUID
	SubjectId *uuid.UUID
	Details   map[string]interface{}
	CreatedAt time.Time
}
