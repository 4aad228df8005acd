package bot

import (
	"github.com/speechify-bot/speechify/internal/language"
	"github.com/speechify-bot/speechify/internal/tts"
)

// Choice sets offered with each prompt. The main-menu escape is present
// on every mid-flow keyboard.

func mainMenuChoices() []string {
	return []string{btnSynthesize, btnSettings}
}

func settingsChoices() []string {
	return []string{btnChangeVoice, btnMainMenu}
}

func backChoices() []string {
	return []string{btnMainMenu}
}

func translateChoices() []string {
	return []string{btnYes, btnNo, btnEnToRu, btnRuToEn, btnMainMenu}
}

func languageChoices(exclude string) []string {
	return append(language.Names(exclude), btnMainMenu)
}

func convertChoices() []string {
	return []string{btnConvert, btnMainMenu}
}

func voiceChoices() []string {
	return append([]string(nil), tts.Voices...)
}
