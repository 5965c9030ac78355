package session

import (
	"context"

	"github.com/google/uuid"
)

// CookieName is the browser cookie carrying the signed session token.
const CookieName = "session_token"

// Store keeps the server-side half of a session: an opaque session id
// mapped to the logged-in user. The cookie only ever holds the signed id.
type Store interface {
	Get(ctx context.Context, sessionId string) (uuid.UUID, bool, error)
	Set(ctx context.Context, sessionId string, userId uuid.UUID) error
	Clear(ctx context.Context, sessionId string) error
}
