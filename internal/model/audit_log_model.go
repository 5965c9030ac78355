package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Action    string         `gorm:"type:varchar(50);not null;index"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	SubjectId *uuid.UUID     `gorm:"type:uuid"`
	Details   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"default:now();not null;index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
