package service

import (
	"context"
	"testing"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

type stubSummarizer struct {
	summary string
	err     error
	calls   int
}

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.summary, s.err
}

func TestSummarizeSuccess(t *testing.T) {
	provider := &stubSummarizer{summary: "A short summary."}
	svc := NewSummarizeService(provider)

	res, err := svc.Summarize(context.Background(), &dto.SummarizeRequest{Content: "Long note body"})
	assert.NoError(t, err)
	assert.Equal(t, "A short summary.", res.Summary)
}

func TestSummarizeBlankContentSkipsProvider(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "whitespace only", content: "   \n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubSummarizer{summary: "never"}
			svc := NewSummarizeService(provider)

			_, err := svc.Summarize(context.Background(), &dto.SummarizeRequest{Content: tt.content})
			appErr, ok := apperrors.As(err)
			assert.True(t, ok)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Equal(t, "Content is required", appErr.Message)
			assert.Equal(t, 0, provider.calls)
		})
	}
}

func TestSummarizeWithoutProviderIsNotConfigured(t *testing.T) {
	svc := NewSummarizeService(nil)

	_, err := svc.Summarize(context.Background(), &dto.SummarizeRequest{Content: "anything"})
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindNotConfigured, appErr.Kind)
}

func TestSummarizeProviderFailureIsGenericUpstream(t *testing.T) {
	provider := &stubSummarizer{err: assert.AnError}
	svc := NewSummarizeService(provider)

	_, err := svc.Summarize(context.Background(), &dto.SummarizeRequest{Content: "anything"})
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindUpstream, appErr.Kind)
	// The provider's raw error never leaks into the public message.
	assert.Equal(t, "Failed to summarize note", appErr.Message)
	assert.ErrorIs(t, appErr.Cause, assert.AnError)
}
