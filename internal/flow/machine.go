package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/speechify-bot/speechify/internal/language"
	"github.com/speechify-bot/speechify/internal/store"
	"github.com/speechify-bot/speechify/internal/translate"
	"github.com/speechify-bot/speechify/internal/tts"
)

// Machine drives a user's conversation through the synthesis flow:
//
//	Idle -> AwaitingSourceLanguage -> AwaitingTargetLanguage -> AccumulatingText -> Idle
//
// with shortcuts straight to AccumulatingText when translation is
// declined or a fixed pair is chosen. All external calls are made here
// and converted to the explicit outcomes the dispatcher switches on.
type Machine struct {
	sessions   Store
	prefs      store.PreferenceStore
	translator translate.Translator
	synth      tts.Synthesizer
	det        language.Detector
	log        *slog.Logger
}

func NewMachine(sessions Store, prefs store.PreferenceStore, translator translate.Translator, synth tts.Synthesizer, det language.Detector, log *slog.Logger) *Machine {
	return &Machine{
		sessions:   sessions,
		prefs:      prefs,
		translator: translator,
		synth:      synth,
		det:        det,
		log:        log,
	}
}

// Current returns the user's session, or ErrNoSession outside a flow.
func (m *Machine) Current(ctx context.Context, userID int64) (*Session, error) {
	return m.sessions.Get(ctx, userID)
}

// Begin enters the synthesis flow. When the user has no stored voice the
// flow cannot proceed: a session is still created (in Idle) so that a
// subsequent voice pick is recognized as flow-originated, and hasVoice
// is false so the dispatcher prompts for a voice instead.
func (m *Machine) Begin(ctx context.Context, userID int64) (hasVoice bool, err error) {
	if _, err := m.prefs.EnsureUser(ctx, userID); err != nil {
		m.log.Error("ensure user failed", "user_id", userID, "op", "begin", "error", err)
		return false, fmt.Errorf("begin flow: %w", err)
	}

	voice, err := m.prefs.GetVoice(ctx, userID)
	if err != nil {
		m.log.Error("get voice failed", "user_id", userID, "op", "begin", "error", err)
		return false, fmt.Errorf("begin flow: %w", err)
	}

	if voice == "" {
		if err := m.sessions.Replace(ctx, &Session{UserID: userID, Phase: PhaseIdle}); err != nil {
			return false, fmt.Errorf("begin flow: %w", err)
		}
		return false, nil
	}
	return true, nil
}

// DeclineTranslation moves straight to text accumulation with no
// language pair: segments of any language will be accepted verbatim.
func (m *Machine) DeclineTranslation(ctx context.Context, userID int64) error {
	return m.sessions.Replace(ctx, &Session{UserID: userID, Phase: PhaseAccumulatingText})
}

// RequestTranslation starts language-pair selection, resetting any pair
// picked earlier.
func (m *Machine) RequestTranslation(ctx context.Context, userID int64) error {
	return m.sessions.Replace(ctx, &Session{UserID: userID, Phase: PhaseAwaitingSourceLanguage})
}

// ChoosePair is the fixed-pair shortcut: both selection states are
// skipped and accumulation starts with the pair set.
func (m *Machine) ChoosePair(ctx context.Context, userID int64, source, target string) error {
	return m.sessions.Replace(ctx, &Session{
		UserID:    userID,
		Phase:     PhaseAccumulatingText,
		Languages: []string{source, target},
	})
}

// PickLanguage handles one language-name input during pair selection.
// Unrecognized names return ErrInvalidLanguage and change nothing. The
// returned session reflects the state after the pick; its Phase tells
// the dispatcher which prompt comes next.
func (m *Machine) PickLanguage(ctx context.Context, userID int64, name string) (*Session, error) {
	code, ok := language.Code(name)
	if !ok {
		return nil, ErrInvalidLanguage
	}

	sess, err := m.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch sess.Phase {
	case PhaseAwaitingSourceLanguage:
		sess.Languages = []string{code}
		sess.Phase = PhaseAwaitingTargetLanguage
	case PhaseAwaitingTargetLanguage:
		sess.Languages = append(sess.Languages, code)
		sess.Phase = PhaseAccumulatingText
	default:
		return nil, ErrNoSession
	}

	if err := m.sessions.Replace(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Append adds one text segment to the accumulated text. When a language
// pair is selected the segment must be detected as the source language;
// a mismatch rejects the segment and leaves the session untouched.
func (m *Machine) Append(ctx context.Context, userID int64, text string) error {
	sess, err := m.sessions.Get(ctx, userID)
	if err != nil {
		return err
	}
	if sess.Phase != PhaseAccumulatingText {
		return ErrNoSession
	}

	if sess.Translating() {
		if detected := m.det.Detect(text); detected != sess.Languages[0] {
			m.log.Warn("segment language mismatch",
				"user_id", userID, "op", "append",
				"expected", sess.Languages[0], "detected", detected)
			return &translate.MismatchError{Expected: sess.Languages[0], Detected: detected}
		}
	}

	if sess.Text == "" {
		sess.Text = text
	} else {
		sess.Text += " " + text
	}
	return m.sessions.Replace(ctx, sess)
}

// Convert finalizes the flow: translate if a pair was selected, resolve
// the voice (forced to the Russian voice for a ru target), synthesize,
// and clear the session back to Idle. On failure the accumulated text is
// dropped but the session stays in AccumulatingText with its language
// pair, so the user can retry without re-selecting.
func (m *Machine) Convert(ctx context.Context, userID int64) (*tts.Result, error) {
	sess, err := m.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != PhaseAccumulatingText {
		return nil, ErrNoSession
	}
	if sess.Text == "" {
		return nil, ErrNothingToConvert
	}

	voice, err := m.prefs.GetVoice(ctx, userID)
	if err != nil || voice == "" {
		m.log.Error("no voice at finalization", "user_id", userID, "op", "convert", "error", err)
		return nil, ErrVoiceRequired
	}

	text := sess.Text
	if sess.Translating() {
		translated, err := m.translator.Translate(ctx, text, sess.Languages[0], sess.Languages[1])
		if err != nil {
			m.retryable(ctx, sess)
			var mismatch *translate.MismatchError
			if errors.As(err, &mismatch) {
				m.log.Warn("translation language mismatch",
					"user_id", userID, "op", "convert",
					"expected", mismatch.Expected, "detected", mismatch.Detected)
				return nil, err
			}
			m.log.Error("translation failed", "user_id", userID, "op", "convert", "error", err)
			return nil, fmt.Errorf("translate: %w", err)
		}
		text = translated

		if sess.Languages[1] == language.Russian {
			voice = tts.VoiceRussian
		}
	}

	result, err := m.synth.Synthesize(ctx, text, voice)
	if err != nil {
		m.retryable(ctx, sess)
		m.log.Error("synthesis failed", "user_id", userID, "op", "convert", "voice", voice, "error", err)
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	if err := m.sessions.Clear(ctx, userID); err != nil {
		m.log.Error("session clear failed", "user_id", userID, "op", "convert", "error", err)
	}
	m.log.Info("converted text to speech", "user_id", userID, "voice", voice, "bytes", len(result.Audio))
	return result, nil
}

// Reset aborts any flow, returning to Idle with empty fields.
func (m *Machine) Reset(ctx context.Context, userID int64) error {
	return m.sessions.Clear(ctx, userID)
}

// retryable drops the accumulated text but keeps the language pair and
// the accumulation phase after a finalization failure.
func (m *Machine) retryable(ctx context.Context, sess *Session) {
	sess.Text = ""
	sess.Phase = PhaseAccumulatingText
	if err := m.sessions.Replace(ctx, sess); err != nil {
		m.log.Error("session replace failed", "user_id", sess.UserID, "op", "convert", "error", err)
	}
}
