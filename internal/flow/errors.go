package flow

import "errors"

// Sentinel outcomes the dispatcher switches on. Anything else coming out
// of the machine is an unexpected failure.
var (
	ErrNothingToConvert = errors.New("nothing to convert")
	ErrInvalidLanguage  = errors.New("invalid language selection")
	ErrVoiceRequired    = errors.New("voice not selected")
	ErrNoSession        = errors.New("no active session")
)
