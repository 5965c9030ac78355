package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByFolderID struct {
	FolderID uuid.UUID
}

func (s ByFolderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id = ?", s.FolderID)
}
