package contract

import (
	"context"

	"notes-be/internal/entity"
	"notes-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteAllByFolderId removes every note in a folder owned by userId.
	// Both predicates are required so a guessed folder id never crosses
	// an ownership boundary.
	DeleteAllByFolderId(ctx context.Context, folderId, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
