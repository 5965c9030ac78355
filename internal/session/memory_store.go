package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore builds a TTL'd in-process store. Sessions do not survive
// a restart; use the redis backend when that matters.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionId string) (uuid.UUID, bool, error) {
	if x, found := s.cache.Get(sessionId); found {
		return x.(uuid.UUID), true, nil
	}
	return uuid.Nil, false, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionId string, userId uuid.UUID) error {
	s.cache.Set(sessionId, userId, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionId string) error {
	s.cache.Delete(sessionId)
	return nil
}
