package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotask-bot/internal/session"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := New(10, time.Minute)
	key := session.Key{ChatID: 1, UserID: 2}

	_, ok, err := st.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	due := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	want := session.Session{State: session.StateAddPriority, Content: "Buy milk", DueDate: &due}
	require.NoError(t, st.Set(ctx, key, want))

	got, ok, err := st.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok, _ = st.Get(ctx, session.Key{ChatID: 1, UserID: 3})
	assert.False(t, ok, "sessions are per user")

	require.NoError(t, st.Clear(ctx, key))
	_, ok, _ = st.Get(ctx, key)
	assert.False(t, ok)
}

func TestStoreExpires(t *testing.T) {
	ctx := context.Background()
	st := New(10, 20*time.Millisecond)
	key := session.Key{ChatID: 1, UserID: 1}

	require.NoError(t, st.Set(ctx, key, session.Session{State: session.StateAddContent}))
	time.Sleep(60 * time.Millisecond)

	_, ok, err := st.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreEvictsOldest(t *testing.T) {
	ctx := context.Background()
	st := New(2, time.Minute)

	for i := int64(1); i <= 3; i++ {
		require.NoError(t, st.Set(ctx, session.Key{ChatID: i, UserID: i}, session.Session{State: session.StateAddContent}))
	}

	_, ok, _ := st.Get(ctx, session.Key{ChatID: 1, UserID: 1})
	assert.False(t, ok)
	_, ok, _ = st.Get(ctx, session.Key{ChatID: 3, UserID: 3})
	assert.True(t, ok)
}
