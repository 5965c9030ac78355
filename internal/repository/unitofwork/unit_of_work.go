package unitofwork

import (
	"context"

	"notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FolderRepository() contract.FolderRepository
	NoteRepository() contract.NoteRepository
	AuditLogRepository() contract.AuditLogRepository
}
