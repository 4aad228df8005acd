// Package language holds the closed set of supported languages and the
// text-language detector used for validating user input.
package language

// The supported languages, shown to users by name and passed to the
// translation service by two-letter code.
const (
	English = "en"
	French  = "fr"
	Spanish = "es"
	Russian = "ru"
)

var nameToCode = map[string]string{
	"English": English,
	"French":  French,
	"Spanish": Spanish,
	"Russian": Russian,
}

// names in the order they are offered to the user.
var names = []string{"English", "French", "Spanish", "Russian"}

// Code resolves a human-readable language name to its code. ok is false
// for anything outside the supported set.
func Code(name string) (string, bool) {
	code, ok := nameToCode[name]
	return code, ok
}

// Names returns the offered language names, skipping exclude if non-empty.
// Used to drop the already-picked source language from the target prompt.
func Names(exclude string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == exclude {
			continue
		}
		out = append(out, n)
	}
	return out
}

// NameOf returns the display name for a code, or the code itself when it
// is not one of ours.
func NameOf(code string) string {
	for name, c := range nameToCode {
		if c == code {
			return name
		}
	}
	return code
}
