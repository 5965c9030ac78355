package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"notes-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newAuditFixture(t *testing.T, factory *fakeFactory) (IPublisherService, context.CancelFunc) {
	t.Helper()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	ctx, cancel := context.WithCancel(context.Background())

	auditSvc := NewAuditService(pubSub, "AUDIT_EVENTS", factory, nopLogger{})
	if err := auditSvc.Consume(ctx); err != nil {
		cancel()
		t.Fatalf("Consume: %v", err)
	}

	return NewPublisherService("AUDIT_EVENTS", pubSub), cancel
}

func waitForAuditCount(t *testing.T, repo *fakeAuditRepo, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		count, _ := repo.Count(context.Background())
		if count >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	count, _ := repo.Count(context.Background())
	t.Fatalf("audit count = %d, want %d", count, want)
}

func TestAuditPipelinePersistsPublishedActions(t *testing.T) {
	factory := newFakeFactory()
	pub, cancel := newAuditFixture(t, factory)
	defer cancel()

	userId := uuid.New()
	subjectId := uuid.New()
	payload, err := json.Marshal(dto.PublishAuditMessage{
		Action:    "NOTE_CREATED",
		UserId:    userId,
		SubjectId: &subjectId,
		Details:   map[string]interface{}{"title": "Groceries"},
	})
	assert.NoError(t, err)
	assert.NoError(t, pub.Publish(context.Background(), payload))

	waitForAuditCount(t, factory.uow.auditRepo, 1)

	logs, err := factory.uow.auditRepo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "NOTE_CREATED", logs[0].Action)
	assert.Equal(t, userId, logs[0].UserId)
	assert.Equal(t, &subjectId, logs[0].SubjectId)
}

func TestAuditPipelineDropsMalformedMessages(t *testing.T) {
	factory := newFakeFactory()
	pub, cancel := newAuditFixture(t, factory)
	defer cancel()

	// Garbage first, then a valid entry: the consumer must get past the
	// garbage without retry-looping.
	assert.NoError(t, pub.Publish(context.Background(), []byte("not json")))

	payload, _ := json.Marshal(dto.PublishAuditMessage{Action: "FOLDER_CREATED", UserId: uuid.New()})
	assert.NoError(t, pub.Publish(context.Background(), payload))

	waitForAuditCount(t, factory.uow.auditRepo, 1)

	logs, _ := factory.uow.auditRepo.FindAll(context.Background())
	assert.Len(t, logs, 1)
	assert.Equal(t, "FOLDER_CREATED", logs[0].Action)
}
