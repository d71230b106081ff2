package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"dotask-bot/internal/session"
)

const (
	defaultCapacity = 10000
	defaultTTL      = 30 * time.Minute
)

type implStore struct {
	cache *expirable.LRU[string, session.Session]
}

// New creates an in-process session store. Entries expire after ttl and the
// least recently used ones are evicted past capacity.
func New(capacity int, ttl time.Duration) session.Store {
	if capacity < 1 {
		capacity = defaultCapacity
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implStore{
		cache: expirable.NewLRU[string, session.Session](capacity, nil, ttl),
	}
}

func (s *implStore) Get(ctx context.Context, key session.Key) (session.Session, bool, error) {
	v, ok := s.cache.Get(key.String())
	return v, ok, nil
}

func (s *implStore) Set(ctx context.Context, key session.Key, v session.Session) error {
	s.cache.Add(key.String(), v)
	return nil
}

func (s *implStore) Clear(ctx context.Context, key session.Key) error {
	s.cache.Remove(key.String())
	return nil
}
