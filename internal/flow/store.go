package flow

import "context"

// Store keeps volatile sessions keyed by user id. Writes for a given
// user only arrive from that user's serialized event stream; the store
// itself must tolerate concurrent access across users.
type Store interface {
	// Get returns the session for userID, or ErrNoSession.
	Get(ctx context.Context, userID int64) (*Session, error)

	// Replace stores the session, overwriting any previous one.
	Replace(ctx context.Context, s *Session) error

	// Clear removes the session. Clearing an absent session is a no-op.
	Clear(ctx context.Context, userID int64) error
}
