package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue("session-123")
	assert.NoError(t, err)

	sid, err := codec.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "session-123", sid)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenCodec("secret-a", time.Hour)
	verifier := NewTokenCodec("secret-b", time.Hour)

	token, err := issuer.Issue("session-123")
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	codec := NewTokenCodec("secret", -time.Minute)

	token, err := codec.Issue("session-123")
	assert.NoError(t, err)

	_, err = codec.Parse(token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	tests := []string{"", "garbage", "a.b.c"}
	for _, raw := range tests {
		_, err := codec.Parse(raw)
		assert.Error(t, err, "token %q should not parse", raw)
	}
}
