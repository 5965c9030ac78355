package entity

import (
	"time"

	"github.com/google/uuid"
)

type Folder struct {
	Id        uuid.UUID
	Name      string
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
