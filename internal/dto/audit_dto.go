package dto

import "github.com/google/uuid"

// PublishAuditMessage is the wire format on the in-process audit topic.
type PublishAuditMessage struct {
	Action    string                 `json:"action"`
	UserId    uuid.UUID              `json:"user_id"`
	SubjectId *uuid.UUID             `json:"subject_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}
