// Package tts adapts speech-synthesis backends behind a single
// Synthesizer interface.
package tts

import (
	"context"
	"fmt"

	"github.com/speechify-bot/speechify/internal/config"
)

// Result holds the generated audio artifact.
type Result struct {
	Audio       []byte
	ContentType string // "audio/mpeg" for both backends
}

// Synthesizer converts final text into an audio artifact using the given
// voice. One attempt per call; any failure is a plain error.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) (*Result, error)
	Name() string
}

// New selects the backend named in cfg.Backend.
func New(ctx context.Context, cfg config.TTSConfig) (Synthesizer, error) {
	switch cfg.Backend {
	case "polly":
		return NewPolly(ctx, cfg)
	case "openai":
		return NewOpenAI(cfg), nil
	default:
		return nil, fmt.Errorf("unknown tts backend: %q", cfg.Backend)
	}
}
