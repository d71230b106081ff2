package redis

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotask-bot/internal/session"
	pkgLog "dotask-bot/pkg/log"
)

// newTestClient connects to REDIS_ADDR (default localhost:6379) and skips
// the test when no server answers.
func newTestClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr, DB: 15})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not available at %s: %v", addr, err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestStoreRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	st := New(pkgLog.NewNop(), client, time.Minute)
	key := session.Key{ChatID: 777, UserID: time.Now().UnixNano()}
	t.Cleanup(func() { st.Clear(ctx, key) })

	_, ok, err := st.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	due := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	want := session.Session{State: session.StateAddPriority, Content: "Buy milk", DueDate: &due, Cursor: "list;p=2"}
	require.NoError(t, st.Set(ctx, key, want))

	got, ok, err := st.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want.State, got.State)
	assert.Equal(t, want.Content, got.Content)
	assert.Equal(t, want.Cursor, got.Cursor)
	require.NotNil(t, got.DueDate)
	assert.True(t, due.Equal(*got.DueDate))

	ttl, err := client.TTL(ctx, redisKey(key)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, st.Clear(ctx, key))
	_, ok, err = st.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreCorruptEntryIsMiss(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	st := New(pkgLog.NewNop(), client, time.Minute)
	key := session.Key{ChatID: 778, UserID: time.Now().UnixNano()}
	t.Cleanup(func() { st.Clear(ctx, key) })

	require.NoError(t, client.Set(ctx, redisKey(key), "{not json", time.Minute).Err())

	_, ok, err := st.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewPanicsOnNilClient(t *testing.T) {
	assert.Panics(t, func() { New(pkgLog.NewNop(), nil, time.Minute) })
}

func TestNewDefaultsNonPositiveTTL(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "localhost:0"})
	t.Cleanup(func() { client.Close() })

	for _, ttl := range []time.Duration{0, -time.Second} {
		st := New(pkgLog.NewNop(), client, ttl).(*implStore)
		assert.Equal(t, defaultTTL, st.ttl, "ttl %v", ttl)
	}
	st := New(pkgLog.NewNop(), client, time.Minute).(*implStore)
	assert.Equal(t, time.Minute, st.ttl)
}

func TestStoreZeroTTLStillExpires(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	st := New(pkgLog.NewNop(), client, 0)
	key := session.Key{ChatID: 779, UserID: time.Now().UnixNano()}
	t.Cleanup(func() { st.Clear(ctx, key) })

	require.NoError(t, st.Set(ctx, key, session.Session{State: session.StateAddContent}))

	ttl, err := client.TTL(ctx, redisKey(key)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, defaultTTL)
}
