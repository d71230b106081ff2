package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"dotask-bot/internal/session"
	pkgLog "dotask-bot/pkg/log"
)

const (
	keyPrefix  = "dotask:session:"
	defaultTTL = 30 * time.Minute
)

type implStore struct {
	l      pkgLog.Logger
	client goredis.UniversalClient
	ttl    time.Duration
}

// New creates a session store shared by every bot replica behind the same
// Redis. A non-positive ttl means defaultTTL; sessions always expire.
func New(l pkgLog.Logger, client goredis.UniversalClient, ttl time.Duration) session.Store {
	if client == nil {
		panic("session/redis: client is nil")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implStore{l: l, client: client, ttl: ttl}
}

func redisKey(key session.Key) string {
	return keyPrefix + key.String()
}

func (s *implStore) Get(ctx context.Context, key session.Key) (session.Session, bool, error) {
	raw, err := s.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return session.Session{}, false, nil
	}
	if err != nil {
		s.l.Errorf(ctx, "session.redis.Get %s: %v", key, err)
		return session.Session{}, false, fmt.Errorf("session get: %w", err)
	}

	var v session.Session
	if err := json.Unmarshal(raw, &v); err != nil {
		// A corrupt entry is treated as no session.
		s.l.Warnf(ctx, "session.redis.Get %s: discarding corrupt entry: %v", key, err)
		return session.Session{}, false, nil
	}
	return v, true, nil
}

func (s *implStore) Set(ctx context.Context, key session.Key, v session.Session) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(key), raw, s.ttl).Err(); err != nil {
		s.l.Errorf(ctx, "session.redis.Set %s: %v", key, err)
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *implStore) Clear(ctx context.Context, key session.Key) error {
	if err := s.client.Del(ctx, redisKey(key)).Err(); err != nil {
		s.l.Errorf(ctx, "session.redis.Clear %s: %v", key, err)
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
