// Package bot routes inbound chat events to the conversation state
// machine and renders the next prompt.
package bot

// Kind discriminates inbound event payloads.
type Kind string

const (
	KindText     Kind = "text"     // free-form text message
	KindButton   Kind = "button"   // reply-keyboard button press (arrives as its label)
	KindCallback Kind = "callback" // inline-keyboard callback (voice selection)
)

// Event is one inbound user event from the chat delivery layer.
type Event struct {
	UserID  int64  `json:"user_id"`
	Kind    Kind   `json:"event_kind"`
	Payload string `json:"payload"`
}

// Reply is the outbound response: prompt text, the choice set to offer,
// and optionally a synthesized audio artifact.
type Reply struct {
	Text        string   `json:"text"`
	Choices     []string `json:"choice_set,omitempty"`
	Audio       []byte   `json:"audio_artifact,omitempty"`
	ContentType string   `json:"content_type,omitempty"`
}
