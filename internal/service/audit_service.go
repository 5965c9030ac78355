package service

import (
	"context"
	"encoding/json"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IAuditService interface {
	Consume(ctx context.Context) error
}

// auditService drains the in-process audit topic and persists entries.
// It runs off the request path: a lost audit entry never fails a request.
type auditService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewAuditService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IAuditService {
	return &auditService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (s *auditService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *auditService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishAuditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.log.Error("audit", "failed to unmarshal audit message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry.
		msg.Ack()
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry := entity.AuditLog{
		Id:        uuid.New(),
		Action:    payload.Action,
		UserId:    payload.UserId,
		SubjectId: payload.SubjectId,
		Details:   payload.Details,
		CreatedAt: time.Now(),
	}

	if err := uow.AuditLogRepository().Create(ctx, &entry); err != nil {
		s.log.Error("audit", "failed to persist audit entry", map[string]interface{}{
			"action": payload.Action,
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
