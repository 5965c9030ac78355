package gotrue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"notes-be/pkg/identity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSignInWithPassword(t *testing.T) {
	knownUser := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body.Email == "known@example.com" && body.Password == "right" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "jwt",
				"user":         map[string]string{"id": knownUser.String()},
			})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
	}))
	defer srv.Close()

	provider := NewProvider(srv.URL, "test-key")

	t.Run("valid credentials", func(t *testing.T) {
		userId, err := provider.SignInWithPassword(context.Background(), "known@example.com", "right")
		assert.NoError(t, err)
		assert.Equal(t, knownUser, userId)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.SignInWithPassword(context.Background(), "known@example.com", "wrong")
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := provider.SignInWithPassword(context.Background(), "nobody@example.com", "pw")
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})
}

func TestSignInServerErrorIsNotCredentialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider := NewProvider(srv.URL, "test-key")

	_, err := provider.SignInWithPassword(context.Background(), "a@b.c", "pw")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestSignInRejectsMalformedUserId(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "jwt",
			"user":         map[string]string{"id": "not-a-uuid"},
		})
	}))
	defer srv.Close()

	provider := NewProvider(srv.URL, "test-key")

	_, err := provider.SignInWithPassword(context.Background(), "a@b.c", "pw")
	assert.Error(t, err)
}
