// Package flow implements the per-user conversation state machine that
// drives text accumulation, language-pair selection, translation and
// speech synthesis.
package flow

// Phase is the current step of the per-user conversation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingSourceLanguage
	PhaseAwaitingTargetLanguage
	PhaseAccumulatingText
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingSourceLanguage:
		return "awaiting_source_language"
	case PhaseAwaitingTargetLanguage:
		return "awaiting_target_language"
	case PhaseAccumulatingText:
		return "accumulating_text"
	default:
		return "unknown"
	}
}

// Session is the ephemeral per-user conversation state. It exists only
// while the user is mid-flow; completing or aborting the flow removes it.
type Session struct {
	UserID int64 `json:"user_id"`
	Phase  Phase `json:"phase"`

	// Languages is either empty or [source, target] language codes.
	Languages []string `json:"languages,omitempty"`

	// Text is the accumulated input, segments joined by single spaces.
	// Only populated while Phase == PhaseAccumulatingText.
	Text string `json:"text,omitempty"`
}

// Translating reports whether a full language pair has been selected.
func (s *Session) Translating() bool {
	return len(s.Languages) == 2
}
