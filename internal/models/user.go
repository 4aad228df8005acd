package models

import "time"

// UserPreference is the durable per-user record. VoiceID is empty until
// the user picks a synthesis voice for the first time.
type UserPreference struct {
	UserID    int64     `json:"user_id"`
	VoiceID   string    `json:"voice_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
