package store

import (
	"context"
	"sync"
	"time"

	"github.com/speechify-bot/speechify/internal/models"
)

// Memory is an in-memory PreferenceStore. Used in tests and for running
// the bot without a database.
type Memory struct {
	mu    sync.RWMutex
	users map[int64]*models.UserPreference
}

func NewMemory() *Memory {
	return &Memory{users: make(map[int64]*models.UserPreference)}
}

var _ PreferenceStore = (*Memory)(nil)

func (s *Memory) EnsureUser(ctx context.Context, userID int64) (*models.UserPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[userID]; ok {
		cp := *u
		return &cp, nil
	}
	now := time.Now()
	u := &models.UserPreference{UserID: userID, CreatedAt: now, UpdatedAt: now}
	s.users[userID] = u
	cp := *u
	return &cp, nil
}

func (s *Memory) GetVoice(ctx context.Context, userID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return "", ErrNotFound
	}
	return u.VoiceID, nil
}

func (s *Memory) SetVoice(ctx context.Context, userID int64, voiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.VoiceID = voiceID
	u.UpdatedAt = time.Now()
	return nil
}
