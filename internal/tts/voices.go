package tts

// Voices is the closed set of voices offered to users. The names double
// as the synthesis-service voice ids and as the selection tokens coming
// back from the voice keyboard.
var Voices = []string{
	"Joanna", "Matthew", "Salli", "Justin", "Kimberly", "Ivy", "Raveena", "Joey",
}

// VoiceRussian is forced whenever the translation target is Russian; the
// user-offered voices are English-only.
const VoiceRussian = "Tatyana"

// ValidVoice reports whether name is one of the offered voices.
func ValidVoice(name string) bool {
	for _, v := range Voices {
		if v == name {
			return true
		}
	}
	return false
}
