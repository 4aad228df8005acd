// Package store holds the durable per-user preference store.
package store

import (
	"context"
	"errors"

	"github.com/speechify-bot/speechify/internal/models"
)

// ErrNotFound is returned when no record exists for a user id.
var ErrNotFound = errors.New("user not found")

// PreferenceStore persists the voice selection per user.
type PreferenceStore interface {
	// EnsureUser creates the record for userID if it does not exist and
	// returns it. Calling it again for the same user is a no-op fetch.
	EnsureUser(ctx context.Context, userID int64) (*models.UserPreference, error)

	// GetVoice returns the stored voice id, which may be empty when the
	// user has never picked one. ErrNotFound if the user does not exist.
	GetVoice(ctx context.Context, userID int64) (string, error)

	// SetVoice updates the stored voice id. ErrNotFound if the user does
	// not exist; callers go through EnsureUser first.
	SetVoice(ctx context.Context, userID int64, voiceID string) error
}
