// Package translate adapts external machine-translation backends behind a
// single Translator interface.
package translate

import (
	"context"
	"fmt"

	"github.com/speechify-bot/speechify/internal/config"
	"github.com/speechify-bot/speechify/internal/language"
)

// Translator converts text from a declared source language to a target
// language. Implementations detect the text's actual language first and
// return a *MismatchError when it differs from the declared source; any
// other failure is a plain error.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
	Name() string
}

// MismatchError reports text whose detected language differs from the
// declared source language.
type MismatchError struct {
	Expected string
	Detected string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("language mismatch: expected %s, detected %s", e.Expected, e.Detected)
}

// checkSource runs detection and returns a *MismatchError on a differing
// result. Shared by all backends so the contract stays uniform.
func checkSource(det language.Detector, text, source string) error {
	if detected := det.Detect(text); detected != source {
		return &MismatchError{Expected: source, Detected: detected}
	}
	return nil
}

// New selects the backend named in cfg.Backend.
func New(cfg config.TranslateConfig, det language.Detector) (Translator, error) {
	switch cfg.Backend {
	case "openai":
		return NewOpenAI(cfg, det), nil
	case "anthropic":
		return NewAnthropic(cfg, det), nil
	default:
		return nil, fmt.Errorf("unknown translate backend: %q", cfg.Backend)
	}
}
