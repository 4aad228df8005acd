package translate

import "github.com/speechify-bot/speechify/internal/config"

func configWith(backend string) config.TranslateConfig {
	return config.TranslateConfig{
		Backend:      backend,
		OpenAIKey:    "test",
		AnthropicKey: "test",
	}
}
