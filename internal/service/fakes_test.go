package service

import (
	"context"
	"sort"
	"sync"

	"notes-be/internal/entity"
	"notes-be/internal/repository/contract"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// nopLogger satisfies logger.ILogger for tests that don't assert on logs.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// capturePublisher records audit payloads instead of pushing them on a bus.
type capturePublisher struct {
	payloads [][]byte
	err      error
}

func (p *capturePublisher) Publish(_ context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

// folderMatches applies the filtering specifications a service would hand
// to GORM against an in-memory folder.
func folderMatches(f *entity.Folder, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if f.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if f.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByFolderID:
			if n.FolderId != s.FolderID {
				return false
			}
		case specification.OwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

type fakeFolderRepo struct {
	folders map[uuid.UUID]*entity.Folder
	err     error
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: make(map[uuid.UUID]*entity.Folder)}
}

func (r *fakeFolderRepo) Create(_ context.Context, folder *entity.Folder) error {
	if r.err != nil {
		return r.err
	}
	cp := *folder
	r.folders[folder.Id] = &cp
	return nil
}

func (r *fakeFolderRepo) Update(_ context.Context, folder *entity.Folder) error {
	if r.err != nil {
		return r.err
	}
	cp := *folder
	r.folders[folder.Id] = &cp
	return nil
}

func (r *fakeFolderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	delete(r.folders, id)
	return nil
}

func (r *fakeFolderRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Folder, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, f := range r.folders {
		if folderMatches(f, specs) {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFolderRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Folder, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*entity.Folder
	for _, f := range r.folders {
		if folderMatches(f, specs) {
			cp := *f
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeFolderRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(context.Background(), specs...)
	return int64(len(all)), err
}

type fakeNoteRepo struct {
	notes map[uuid.UUID]*entity.Note
	err   error
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uuid.UUID]*entity.Note)}
}

func (r *fakeNoteRepo) Create(_ context.Context, note *entity.Note) error {
	if r.err != nil {
		return r.err
	}
	cp := *note
	r.notes[note.Id] = &cp
	return nil
}

func (r *fakeNoteRepo) Update(_ context.Context, note *entity.Note) error {
	if r.err != nil {
		return r.err
	}
	cp := *note
	r.notes[note.Id] = &cp
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	delete(r.notes, id)
	return nil
}

func (r *fakeNoteRepo) DeleteAllByFolderId(_ context.Context, folderId, userId uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	for id, n := range r.notes {
		if n.FolderId == folderId && n.UserId == userId {
			delete(r.notes, id)
		}
	}
	return nil
}

func (r *fakeNoteRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, n := range r.notes {
		if noteMatches(n, specs) {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*entity.Note
	for _, n := range r.notes {
		if noteMatches(n, specs) {
			cp := *n
			result = append(result, &cp)
		}
	}
	desc := false
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok {
			desc = s.Desc
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if desc {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeNoteRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(context.Background(), specs...)
	return int64(len(all)), err
}

type fakeUserRepo struct {
	users []*entity.User
	err   error
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		match := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByEmail); ok && u.Email != s.Email {
				match = false
			}
		}
		if match {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.users)), r.err
}

// fakeAuditRepo is written to from the audit consumer goroutine, so it
// guards its slice.
type fakeAuditRepo struct {
	mu   sync.Mutex
	logs []*entity.AuditLog
	err  error
}

func (r *fakeAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *log
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *fakeAuditRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.AuditLog(nil), r.logs...), r.err
}

func (r *fakeAuditRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.logs)), r.err
}

// fakeUnitOfWork hands out the shared fakes and counts transaction calls.
type fakeUnitOfWork struct {
	userRepo   *fakeUserRepo
	folderRepo *fakeFolderRepo
	noteRepo   *fakeNoteRepo
	auditRepo  *fakeAuditRepo

	begins    int
	commits   int
	rollbacks int
	beginErr  error
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error {
	if u.beginErr != nil {
		return u.beginErr
	}
	u.begins++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository         { return u.userRepo }
func (u *fakeUnitOfWork) FolderRepository() contract.FolderRepository     { return u.folderRepo }
func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository         { return u.noteRepo }
func (u *fakeUnitOfWork) AuditLogRepository() contract.AuditLogRepository { return u.auditRepo }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: &fakeUnitOfWork{
		userRepo:   &fakeUserRepo{},
		folderRepo: newFakeFolderRepo(),
		noteRepo:   newFakeNoteRepo(),
		auditRepo:  &fakeAuditRepo{},
	}}
}

func (f *fakeFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}
