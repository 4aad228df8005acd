package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/speechify-bot/speechify/internal/flow"
	"github.com/speechify-bot/speechify/internal/language"
	"github.com/speechify-bot/speechify/internal/store"
	"github.com/speechify-bot/speechify/internal/translate"
	"github.com/speechify-bot/speechify/internal/tts"
)

// Archiver persists synthesized audio out-of-band. Failures are logged,
// never surfaced: the user already has the audio in the reply.
type Archiver interface {
	Archive(ctx context.Context, userID int64, audio []byte) error
}

// userGate serializes one user's events.
type userGate struct {
	mu       sync.Mutex
	lastSeen time.Time
}

// Dispatcher maps inbound events to state-machine transitions and
// produces the next prompt. Events for a single user are processed
// strictly one at a time; different users proceed in parallel.
type Dispatcher struct {
	machine  *flow.Machine
	prefs    store.PreferenceStore
	archiver Archiver // optional
	log      *slog.Logger

	mu    sync.Mutex
	gates map[int64]*userGate
}

func NewDispatcher(machine *flow.Machine, prefs store.PreferenceStore, archiver Archiver, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		machine:  machine,
		prefs:    prefs,
		archiver: archiver,
		log:      log,
		gates:    make(map[int64]*userGate),
	}
	go d.cleanup()
	return d
}

// gate returns the user's gate, creating it on first contact.
func (d *Dispatcher) gate(userID int64) *userGate {
	d.mu.Lock()
	defer d.mu.Unlock()

	g, ok := d.gates[userID]
	if !ok {
		g = &userGate{}
		d.gates[userID] = g
	}
	g.lastSeen = time.Now()
	return g
}

func (d *Dispatcher) cleanup() {
	for {
		time.Sleep(time.Minute)
		d.evictIdleGates(3 * time.Minute)
	}
}

// evictIdleGates drops gates idle for longer than idle. A gate still
// held by an in-flight handler is skipped.
func (d *Dispatcher) evictIdleGates(idle time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, g := range d.gates {
		if time.Since(g.lastSeen) > idle && g.mu.TryLock() {
			g.mu.Unlock()
			delete(d.gates, id)
		}
	}
}

// Handle processes one inbound event and returns the reply. It never
// returns an error: every failure maps to a user-visible message.
func (d *Dispatcher) Handle(ctx context.Context, ev Event) Reply {
	g := d.gate(ev.UserID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if ev.Kind == KindCallback {
		return d.handleVoicePick(ctx, ev.UserID, ev.Payload)
	}

	switch ev.Payload {
	case cmdStart:
		return d.handleStart(ctx, ev.UserID)
	case cmdHelp:
		return Reply{Text: msgHelp, Choices: mainMenuChoices()}
	case btnMainMenu:
		return d.handleMainMenu(ctx, ev.UserID)
	case btnSettings:
		return Reply{Text: msgSettings, Choices: settingsChoices()}
	case btnChangeVoice:
		return Reply{Text: msgChooseVoice, Choices: voiceChoices()}
	case btnSynthesize:
		return d.handleSynthesize(ctx, ev.UserID)
	case btnYes:
		return d.handleWithTranslation(ctx, ev.UserID)
	case btnNo:
		return d.handleWithoutTranslation(ctx, ev.UserID)
	case btnEnToRu:
		return d.handlePair(ctx, ev.UserID, language.English, language.Russian)
	case btnRuToEn:
		return d.handlePair(ctx, ev.UserID, language.Russian, language.English)
	case btnConvert:
		return d.handleConvert(ctx, ev.UserID)
	default:
		return d.handleFreeText(ctx, ev.UserID, ev.Payload)
	}
}

func (d *Dispatcher) handleStart(ctx context.Context, userID int64) Reply {
	if _, err := d.prefs.EnsureUser(ctx, userID); err != nil {
		d.log.Error("start failed", "user_id", userID, "op", "start", "error", err)
		return Reply{Text: msgUnexpected, Choices: mainMenuChoices()}
	}
	d.log.Info("user started", "user_id", userID)
	return Reply{Text: msgWelcome, Choices: mainMenuChoices()}
}

func (d *Dispatcher) handleMainMenu(ctx context.Context, userID int64) Reply {
	if err := d.machine.Reset(ctx, userID); err != nil {
		d.log.Error("reset failed", "user_id", userID, "op", "main_menu", "error", err)
		return Reply{Text: msgUnexpected, Choices: mainMenuChoices()}
	}
	return Reply{Text: msgMainMenu, Choices: mainMenuChoices()}
}

func (d *Dispatcher) handleSynthesize(ctx context.Context, userID int64) Reply {
	hasVoice, err := d.machine.Begin(ctx, userID)
	if err != nil {
		return Reply{Text: msgUnexpected, Choices: backChoices()}
	}
	if !hasVoice {
		return Reply{Text: msgSelectVoiceFirst, Choices: voiceChoices()}
	}
	return Reply{Text: msgTranslate, Choices: translateChoices()}
}

// handleVoicePick persists a voice selection. The reply depends on where
// the pick came from: an Idle session marks a pending flow entry, so the
// flow continues with the translate question; otherwise it is a plain
// Settings confirmation.
func (d *Dispatcher) handleVoicePick(ctx context.Context, userID int64, voice string) Reply {
	if !tts.ValidVoice(voice) {
		return Reply{Text: msgInvalidVoice, Choices: voiceChoices()}
	}

	if _, err := d.prefs.EnsureUser(ctx, userID); err != nil {
		d.log.Error("ensure user failed", "user_id", userID, "op", "voice_pick", "error", err)
		return Reply{Text: msgUnexpected, Choices: backChoices()}
	}
	if err := d.prefs.SetVoice(ctx, userID, voice); err != nil {
		d.log.Error("set voice failed", "user_id", userID, "op", "voice_pick", "error", err)
		return Reply{Text: msgUnexpected, Choices: backChoices()}
	}
	d.log.Info("voice selected", "user_id", userID, "voice", voice)

	sess, err := d.machine.Current(ctx, userID)
	if err == nil && sess.Phase == flow.PhaseIdle {
		return Reply{Text: msgVoiceChosenFlow, Choices: translateChoices()}
	}
	return Reply{Text: fmt.Sprintf(msgVoiceChosen, voice), Choices: backChoices()}
}

func (d *Dispatcher) handleWithTranslation(ctx context.Context, userID int64) Reply {
	if err := d.machine.RequestTranslation(ctx, userID); err != nil {
		d.log.Error("request translation failed", "user_id", userID, "op", "translate_yes", "error", err)
		return Reply{Text: msgUnexpected, Choices: backChoices()}
	}
	return Reply{Text: msgPickSource, Choices: languageChoices("")}
}

func (d *Dispatcher) handleWithoutTranslation(ctx context.Context, userID int64) Reply {
	if err := d.machine.DeclineTranslation(ctx, userID); err != nil {
		d.log.Error("decline translation failed", "user_id", userID, "op", "translate_no", "error", err)
		return Reply{Text: msgUnexpected, Choices: backChoices()}
	}
	return Reply{Text: msgTypeText, Choices: backChoices()}
}

func (d *Dispatcher) handlePair(ctx context.Context, userID int64, source, target string) Reply {
	if err := d.machine.ChoosePair(ctx, userID, source, target); err != nil {
		d.log.Error("choose pair failed", "user_id", userID, "op", "fixed_pair", "error", err)
		return Reply{Text: msgUnexpected, Choices: backChoices()}
	}
	return Reply{Text: msgTypeText, Choices: backChoices()}
}

// handleFreeText routes non-command text by the current phase: language
// picks while a pair is being selected, text accumulation afterwards.
func (d *Dispatcher) handleFreeText(ctx context.Context, userID int64, text string) Reply {
	sess, err := d.machine.Current(ctx, userID)
	if err != nil {
		return Reply{Text: msgUnknown, Choices: backChoices()}
	}

	switch sess.Phase {
	case flow.PhaseAwaitingSourceLanguage, flow.PhaseAwaitingTargetLanguage:
		return d.handleLanguagePick(ctx, userID, sess, text)
	case flow.PhaseAccumulatingText:
		return d.handleSegment(ctx, userID, text)
	default:
		return Reply{Text: msgUnknown, Choices: backChoices()}
	}
}

func (d *Dispatcher) handleLanguagePick(ctx context.Context, userID int64, sess *flow.Session, name string) Reply {
	exclude := ""
	if sess.Phase == flow.PhaseAwaitingTargetLanguage && len(sess.Languages) > 0 {
		exclude = language.NameOf(sess.Languages[0])
	}

	next, err := d.machine.PickLanguage(ctx, userID, name)
	if errors.Is(err, flow.ErrInvalidLanguage) {
		return Reply{Text: msgInvalidLanguage, Choices: languageChoices(exclude)}
	}
	if err != nil {
		d.log.Error("pick language failed", "user_id", userID, "op", "pick_language", "error", err)
		return Reply{Text: msgUnexpected, Choices: backChoices()}
	}

	if next.Phase == flow.PhaseAwaitingTargetLanguage {
		return Reply{Text: msgPickTarget, Choices: languageChoices(name)}
	}
	return Reply{Text: msgTypeText, Choices: backChoices()}
}

func (d *Dispatcher) handleSegment(ctx context.Context, userID int64, text string) Reply {
	err := d.machine.Append(ctx, userID, text)
	var mismatch *translate.MismatchError
	if errors.As(err, &mismatch) {
		return Reply{Text: msgLanguageError, Choices: backChoices()}
	}
	if err != nil {
		d.log.Error("append failed", "user_id", userID, "op", "append", "error", err)
		return Reply{Text: msgUnexpected, Choices: backChoices()}
	}
	return Reply{Text: msgAddMore, Choices: convertChoices()}
}

func (d *Dispatcher) handleConvert(ctx context.Context, userID int64) Reply {
	result, err := d.machine.Convert(ctx, userID)
	switch {
	case err == nil:
		if d.archiver != nil {
			if aerr := d.archiver.Archive(ctx, userID, result.Audio); aerr != nil {
				d.log.Error("archive failed", "user_id", userID, "op", "convert", "error", aerr)
			}
		}
		return Reply{Audio: result.Audio, ContentType: result.ContentType, Choices: backChoices()}
	case errors.Is(err, flow.ErrNothingToConvert):
		return Reply{Text: msgNothingToConvert, Choices: convertChoices()}
	case errors.Is(err, flow.ErrVoiceRequired):
		return Reply{Text: msgSelectVoiceFirst, Choices: voiceChoices()}
	case errors.Is(err, flow.ErrNoSession):
		return Reply{Text: msgUnknown, Choices: backChoices()}
	default:
		var mismatch *translate.MismatchError
		if errors.As(err, &mismatch) {
			return Reply{Text: msgLanguageError, Choices: backChoices()}
		}
		return Reply{Text: msgUnexpected, Choices: backChoices()}
	}
}
