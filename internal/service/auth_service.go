package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/apperrors"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/session"
	"notes-be/pkg/events"
	"notes-be/pkg/identity"
	pktNats "notes-be/pkg/nats"

	"github.com/google/uuid"
)

// loginFailedMessage is deliberately the same for every identity failure:
// unknown user, wrong password and provider outage are indistinguishable
// to the caller.
const loginFailedMessage = "invalid email or password"

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionToken string) error
}

type authService struct {
	identityProvider identity.Provider
	sessionStore     session.Store
	tokenCodec       *session.TokenCodec
	sessionTTL       time.Duration
	log              logger.ILogger
	eventPublisher   *pktNats.Publisher
}

func NewAuthService(
	identityProvider identity.Provider,
	sessionStore session.Store,
	tokenCodec *session.TokenCodec,
	sessionTTL time.Duration,
	log logger.ILogger,
	eventPublisher *pktNats.Publisher,
) IAuthService {
	return &authService{
		identityProvider: identityProvider,
		sessionStore:     sessionStore,
		tokenCodec:       tokenCodec,
		sessionTTL:       sessionTTL,
		log:              log,
		eventPublisher:   eventPublisher,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// Short-circuit before touching the identity provider.
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	userId, err := s.identityProvider.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, identity.ErrInvalidCredentials) {
			s.log.Error("auth", "identity provider failure", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, &apperrors.AppError{Kind: apperrors.KindUnauthorized, Message: loginFailedMessage}
	}

	sid := uuid.New().String()
	if err := s.sessionStore.Set(ctx, sid, userId); err != nil {
		return nil, apperrors.Upstream("failed to create session", err)
	}

	token, err := s.tokenCodec.Issue(sid)
	if err != nil {
		return nil, apperrors.Upstream("failed to create session", err)
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "USER_LOGIN",
			Data: map[string]interface{}{
				"user_id": userId,
				"time":    time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_LOGIN event: %v\n", err)
		}
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}, nil
}

// Logout is idempotent: an absent, expired or garbage token is treated
// the same as a valid one.
func (s *authService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}

	sid, err := s.tokenCodec.Parse(sessionToken)
	if err != nil {
		return nil
	}

	if err := s.sessionStore.Clear(ctx, sid); err != nil {
		s.log.Warn("auth", "failed to clear session", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}
