package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateNoteRequest deliberately has no user_id field: ownership always
// comes from the session, never from the payload.
type CreateNoteRequest struct {
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	FolderId uuid.UUID `json:"folder_id" validate:"required"`
}

type UpdateNoteRequest struct {
	Id      uuid.UUID
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	FolderId  uuid.UUID  `json:"folder_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
