package service

import (
	"context"
	"encoding/json"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/apperrors"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	GetAllByFolder(ctx context.Context, userId uuid.UUID, folderId uuid.UUID) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *noteService) GetAllByFolder(ctx context.Context, userId uuid.UUID, folderId uuid.UUID) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByFolderID{FolderID: folderId},
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		// Unlike folder listing, note listing surfaces the failure.
		return nil, apperrors.Upstream("Failed to fetch notes", err)
	}

	result := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, toNoteResponse(note))
	}
	return result, nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Ownership comes from the session, whatever the payload claimed.
	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		FolderId:  req.FolderId,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperrors.Upstream("Failed to create note", err)
	}

	s.publishAudit(ctx, "NOTE_CREATED", userId, &note.Id, map[string]interface{}{
		"folder_id": note.FolderId,
		"title":     note.Title,
	})

	return toNoteResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.Upstream("Failed to update note", err)
	}
	if note == nil {
		return nil, apperrors.NotFound("Note not found")
	}

	now := time.Now()
	note.Title = req.Title
	note.Content = req.Content
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperrors.Upstream("Failed to update note", err)
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return apperrors.Upstream("Failed to delete note", err)
	}
	if note == nil {
		return apperrors.NotFound("Note not found")
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return apperrors.Upstream("Failed to delete note", err)
	}

	s.publishAudit(ctx, "NOTE_DELETED", userId, &id, nil)
	return nil
}

func (s *noteService) publishAudit(ctx context.Context, action string, userId uuid.UUID, subjectId *uuid.UUID, details map[string]interface{}) {
	msg := dto.PublishAuditMessage{
		Action:    action,
		UserId:    userId,
		SubjectId: subjectId,
		Details:   details,
	}
	msgJson, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.log.Warn("note", "failed to publish audit message", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		FolderId:  note.FolderId,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
