package session

import "context"

// Store keeps one conversation Session per chat and user.
type Store interface {
	// Get returns ok=false when no session is stored or it expired.
	Get(ctx context.Context, key Key) (Session, bool, error)
	Set(ctx context.Context, key Key, s Session) error
	Clear(ctx context.Context, key Key) error
}
