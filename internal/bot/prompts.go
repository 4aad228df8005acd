package bot

// Button labels. These double as routing keys: reply-keyboard presses
// come back as their label text.
const (
	cmdStart = "/start"
	cmdHelp  = "/help"

	btnSynthesize  = "Synthesize text into voice"
	btnSettings    = "Settings"
	btnChangeVoice = "Change voice actor"
	btnMainMenu    = "⬅️ Main menu"
	btnYes         = "Yes"
	btnNo          = "No"
	btnEnToRu      = "From english to russian"
	btnRuToEn      = "From russian to english"
	btnConvert     = "Convert it"
)

// User-facing prompt texts.
const (
	msgWelcome = "Welcome to Speechify! Here, you can enter text, and it will be read out loud " +
		"in your chosen voice and language. Try it out and hear how words sound in different languages and voices!"
	msgHelp = "Press 'Synthesize text into voice' to turn your text into audio. " +
		"You can change the voice actor any time in Settings."
	msgMainMenu         = "Main menu"
	msgSettings         = "Here you can change your voice actor"
	msgChooseVoice      = "Now choose your voice actor"
	msgSelectVoiceFirst = "First of all, you need to select a voice actor. After that, you can change it in Settings"
	msgVoiceChosen      = "You have chosen: %s"
	msgVoiceChosenFlow  = "Great choice! Now, do you want to translate your text?"
	msgTranslate        = "Do you want to translate your speech?"
	msgPickSource       = "Select the language you want to translate from"
	msgPickTarget       = "Now, select the language to translate into"
	msgTypeText         = "Now type the text for speech conversion!"
	msgAddMore          = "If you want to add more text, you can just type it in. " +
		"When you are ready, press 'Convert it' to convert the text to speech."
	msgNothingToConvert = "There is nothing to convert"
	msgLanguageError    = "I can't understand this language, please write on language that you have chosen >_<"
	msgUnexpected       = "An unexpected error has occurred X_X. We apologize for it and will fix it as soon as possible."
	msgInvalidLanguage  = "Please select a valid language."
	msgInvalidVoice     = "Please select a valid voice actor."
	msgUnknown          = "I can't understand you. =("
)
