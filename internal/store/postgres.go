package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/speechify-bot/speechify/internal/models"
)

// Postgres implements PreferenceStore on a pgx pool. Rows are independent
// per user id, so concurrent access for different users needs no
// coordination beyond the pool itself.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

var _ PreferenceStore = (*Postgres)(nil)

func (s *Postgres) EnsureUser(ctx context.Context, userID int64) (*models.UserPreference, error) {
	var u models.UserPreference
	// The no-op DO UPDATE makes RETURNING yield the row on conflict too.
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (user_id) VALUES ($1)
		 ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		 RETURNING user_id, voice_id, created_at, updated_at`,
		userID,
	).Scan(&u.UserID, &u.VoiceID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("ensure user %d: %w", userID, err)
	}
	return &u, nil
}

func (s *Postgres) GetVoice(ctx context.Context, userID int64) (string, error) {
	var voice string
	err := s.db.QueryRow(ctx,
		"SELECT voice_id FROM users WHERE user_id = $1", userID,
	).Scan(&voice)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get voice for user %d: %w", userID, err)
	}
	return voice, nil
}

func (s *Postgres) SetVoice(ctx context.Context, userID int64, voiceID string) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE users SET voice_id = $2, updated_at = now() WHERE user_id = $1",
		userID, voiceID,
	)
	if err != nil {
		return fmt.Errorf("set voice for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
