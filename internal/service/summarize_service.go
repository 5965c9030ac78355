package service

import (
	"context"
	"strings"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/apperrors"
	"notes-be/pkg/summarizer"
)

type ISummarizeService interface {
	Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
}

type summarizeService struct {
	provider summarizer.Provider // nil when no API key is configured
}

func NewSummarizeService(provider summarizer.Provider) ISummarizeService {
	return &summarizeService{
		provider: provider,
	}
}

func (s *summarizeService) Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.Validation("Content is required")
	}

	if s.provider == nil {
		return nil, apperrors.NotConfigured("Summarization service is not configured")
	}

	summary, err := s.provider.Summarize(ctx, req.Content)
	if err != nil {
		// The raw provider error stays in the logs.
		return nil, apperrors.Upstream("Failed to summarize note", err)
	}

	return &dto.SummarizeResponse{Summary: summary}, nil
}
