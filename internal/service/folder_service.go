package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/apperrors"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFolderService interface {
	// GetAll never fails: a store outage degrades to an empty list so
	// the dashboard still renders.
	GetAll(ctx context.Context, userId uuid.UUID) []*dto.FolderResponse
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) error
	Delete(ctx context.Context, userId uuid.UUID, folderId uuid.UUID) error
}

type folderService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewFolderService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IFolderService {
	return &folderService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *folderService) GetAll(ctx context.Context, userId uuid.UUID) []*dto.FolderResponse {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folders, err := uow.FolderRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		s.log.Error("folder", "failed to list folders, degrading to empty", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return []*dto.FolderResponse{}
	}

	result := make([]*dto.FolderResponse, 0, len(folders))
	for _, folder := range folders {
		result = append(result, &dto.FolderResponse{
			Id:        folder.Id,
			Name:      folder.Name,
			CreatedAt: folder.CreatedAt,
		})
	}
	return result
}

func (s *folderService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) error {
	// An empty name is a silent no-op, not an error.
	if strings.TrimSpace(req.Name) == "" {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	folder := entity.Folder{
		Id:        uuid.New(),
		Name:      req.Name,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.FolderRepository().Create(ctx, &folder); err != nil {
		return apperrors.Upstream("Failed to create folder", err)
	}

	s.publishAudit(ctx, "FOLDER_CREATED", userId, &folder.Id, map[string]interface{}{
		"name": folder.Name,
	})
	return nil
}

func (s *folderService) Delete(ctx context.Context, userId uuid.UUID, folderId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: folderId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return apperrors.Upstream("Failed to delete folder", err)
	}
	if folder == nil {
		// A foreign folder and a missing folder look the same.
		return apperrors.NotFound("Folder not found")
	}

	// Notes first, then the folder, in one transaction: no orphan window.
	if err := uow.Begin(ctx); err != nil {
		return apperrors.Upstream("Failed to delete folder", err)
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().DeleteAllByFolderId(ctx, folderId, userId); err != nil {
		return apperrors.Upstream("Failed to delete folder", err)
	}

	if err := uow.FolderRepository().Delete(ctx, folderId); err != nil {
		return apperrors.Upstream("Failed to delete folder", err)
	}

	if err := uow.Commit(); err != nil {
		return apperrors.Upstream("Failed to delete folder", err)
	}

	s.publishAudit(ctx, "FOLDER_DELETED", userId, &folderId, map[string]interface{}{
		"name": folder.Name,
	})
	return nil
}

func (s *folderService) publishAudit(ctx context.Context, action string, userId uuid.UUID, subjectId *uuid.UUID, details map[string]interface{}) {
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
		s.log.Warn("folder", "failed to publish audit message", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}
