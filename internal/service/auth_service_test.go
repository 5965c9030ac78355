package service

import (
	"context"
	"testing"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/apperrors"
	"notes-be/internal/session"
	"notes-be/pkg/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stubIdentity counts calls so tests can prove short-circuits.
type stubIdentity struct {
	userId uuid.UUID
	err    error
	calls  int
}

func (s *stubIdentity) SignInWithPassword(_ context.Context, _, _ string) (uuid.UUID, error) {
	s.calls++
	if s.err != nil {
		return uuid.Nil, s.err
	}
	return s.userId, nil
}

func newAuthFixture(provider identity.Provider) (IAuthService, *session.MemoryStore, *session.TokenCodec) {
	store := session.NewMemoryStore(time.Hour)
	codec := session.NewTokenCodec("test_secret", time.Hour)
	svc := NewAuthService(provider, store, codec, time.Hour, nopLogger{}, nil)
	return svc, store, codec
}

func TestLoginSuccess(t *testing.T) {
	userId := uuid.New()
	svc, store, codec := newAuthFixture(&stubIdentity{userId: userId})

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "pw"})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	// The token resolves back to the identity provider's user.
	sid, err := codec.Parse(res.Token)
	assert.NoError(t, err)
	got, found, err := store.Get(context.Background(), sid)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, userId, got)
}

func TestLoginMissingFieldsSkipsProvider(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "missing email", email: "", password: "pw"},
		{name: "missing password", email: "a@b.c", password: ""},
		{name: "missing both", email: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubIdentity{userId: uuid.New()}
			svc, _, _ := newAuthFixture(provider)

			_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.password})
			appErr, ok := apperrors.As(err)
			assert.True(t, ok)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Equal(t, 0, provider.calls)
		})
	}
}

func TestLoginFailureMessagesAreIdentical(t *testing.T) {
	// Wrong password and provider outage must be indistinguishable.
	badCreds := &stubIdentity{err: identity.ErrInvalidCredentials}
	outage := &stubIdentity{err: assert.AnError}

	svcA, _, _ := newAuthFixture(badCreds)
	svcB, _, _ := newAuthFixture(outage)

	_, errA := svcA.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "wrong"})
	_, errB := svcB.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "right"})

	appErrA, okA := apperrors.As(errA)
	appErrB, okB := apperrors.As(errB)
	assert.True(t, okA)
	assert.True(t, okB)
	assert.Equal(t, apperrors.KindUnauthorized, appErrA.Kind)
	assert.Equal(t, apperrors.KindUnauthorized, appErrB.Kind)
	assert.Equal(t, appErrA.Message, appErrB.Message)
}

func TestLogoutClearsSession(t *testing.T) {
	userId := uuid.New()
	svc, store, codec := newAuthFixture(&stubIdentity{userId: userId})

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "pw"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(context.Background(), res.Token))

	sid, _ := codec.Parse(res.Token)
	_, found, _ := store.Get(context.Background(), sid)
	assert.False(t, found)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _, _ := newAuthFixture(&stubIdentity{userId: uuid.New()})

	assert.NoError(t, svc.Logout(context.Background(), ""))
	assert.NoError(t, svc.Logout(context.Background(), "not-a-jwt"))
	assert.NoError(t, svc.Logout(context.Background(), "not-a-jwt"))
}
