package language

import (
	lingua "github.com/pemistahl/lingua-go"
)

// Detector classifies a piece of text as one of the supported languages.
// Detection is best-effort and never fails; unclassifiable text falls
// back to English.
type Detector interface {
	Detect(text string) string
}

// LinguaDetector wraps a lingua classifier restricted to the supported
// set. The models ship inside the library, so detection is offline and
// deterministic.
type LinguaDetector struct {
	det lingua.LanguageDetector
}

func NewDetector() *LinguaDetector {
	return &LinguaDetector{
		det: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.French, lingua.Spanish, lingua.Russian).
			Build(),
	}
}

var _ Detector = (*LinguaDetector)(nil)

func (d *LinguaDetector) Detect(text string) string {
	lang, ok := d.det.DetectLanguageOf(text)
	if !ok {
		return English
	}
	switch lang {
	case lingua.French:
		return French
	case lingua.Spanish:
		return Spanish
	case lingua.Russian:
		return Russian
	default:
		return English
	}
}
