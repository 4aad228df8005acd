package language

import (
	"testing"

	"github.com/matryer/is"
)

func TestDetect(t *testing.T) {
	d := NewDetector()

	cases := []struct {
		text string
		want string
	}{
		{"hello world", English},
		{"the quick brown fox jumps over the lazy dog", English},
		{"Привет, как дела?", Russian},
		{"Я хочу слушать музыку", Russian},
		{"bonjour, je suis dans le jardin et je mange une pomme", French},
		{"où est la gare, s'il vous plaît", French},
		{"hola, yo no hablo muy bien pero las palabras son bonitas", Spanish},
		{"mañana por la tarde", Spanish},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			is := is.New(t)
			is.Equal(d.Detect(tc.text), tc.want)
		})
	}
}

// Short foreign segments with no diacritics must still classify as their
// own language, not English: a false English here would slip a
// mismatched segment past an en-source accumulation.
func TestDetectPlainForeignText(t *testing.T) {
	d := NewDetector()

	cases := []struct {
		text string
		want string
	}{
		{"Merci beaucoup", French},
		{"Bonsoir tout seul", French},
		{"Buenas noches amigo", Spanish},
		{"Gracias, hasta luego.", Spanish},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			is := is.New(t)
			is.Equal(d.Detect(tc.text), tc.want)
		})
	}
}

func TestDetectFallsBackToEnglish(t *testing.T) {
	is := is.New(t)
	d := NewDetector()

	// Nothing classifiable: no letters at all.
	is.Equal(d.Detect(""), English)
	is.Equal(d.Detect("1234 5678 !?"), English)
}

func TestCodeAndNames(t *testing.T) {
	is := is.New(t)

	code, ok := Code("Russian")
	is.True(ok)
	is.Equal(code, Russian)

	_, ok = Code("Klingon")
	is.True(!ok) // outside the enumerated set

	all := Names("")
	is.Equal(len(all), 4)

	withoutEnglish := Names("English")
	is.Equal(len(withoutEnglish), 3)
	for _, n := range withoutEnglish {
		is.True(n != "English") // picked source is excluded from target choices
	}

	is.Equal(NameOf(French), "French")
}
