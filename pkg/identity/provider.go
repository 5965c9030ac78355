package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidCredentials covers every "login refused" case. Callers must
// not distinguish unknown-user from wrong-password; the generic error is
// what keeps account enumeration impossible.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Provider validates a password login and returns the user id.
type Provider interface {
	SignInWithPassword(ctx context.Context, email, password string) (uuid.UUID, error)
}
