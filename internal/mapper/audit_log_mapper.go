package mapper

import (
	"encoding/json"

	"notes-be/internal/entity"
	"notes-be/internal/model"

	"gorm.io/datatypes"
)

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper {
	return &AuditLogMapper{}
}

func (m *AuditLogMapper) ToEntity(l *model.AuditLog) *entity.AuditLog {
	if l == nil {
		return nil
	}

	var details map[string]interface{}
	if len(l.Details) > 0 {
		// Details column is operator-facing; a corrupt row should not
		// break reads, so unmarshal errors leave it nil.
		_ = json.Unmarshal(l.Details, &details)
	}

	return &entity.AuditLog{
		Id:        l.Id,
		Action:    l.Action,
		UserId:    l.UserId,
		SubjectId: l.SubjectId,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(l *entity.AuditLog) *model.AuditLog {
	if l == nil {
		return nil
	}

	var details datatypes.JSON
	if l.Details != nil {
		if raw, err := json.Marshal(l.Details); err == nil {
			details = raw
		}
	}

	return &model.AuditLog{
		Id:        l.Id,
		Action:    l.Action,
		UserId:    l.UserId,
		SubjectId: l.SubjectId,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}
}

func (m *AuditLogMapper) ToEntities(logs []*model.AuditLog) []*entity.AuditLog {
	entities := make([]*entity.AuditLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
