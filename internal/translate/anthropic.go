package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/speechify-bot/speechify/internal/config"
	"github.com/speechify-bot/speechify/internal/language"
)

const defaultAnthropicModel = "claude-3-haiku-20240307"

// Anthropic translates through the Messages API.
type Anthropic struct {
	client anthropic.Client
	model  string
	det    language.Detector
}

func NewAnthropic(cfg config.TranslateConfig, det language.Detector) *Anthropic {
	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	return &Anthropic{
		client: anthropic.NewClient(option.WithAPIKey(cfg.AnthropicKey)),
		model:  model,
		det:    det,
	}
}

func (p *Anthropic) Name() string { return "anthropic" }

func (p *Anthropic) Translate(ctx context.Context, text, source, target string) (string, error) {
	if err := checkSource(p.det, text, source); err != nil {
		return "", err
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt(source, target)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic translate: %w", err)
	}

	var out strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("anthropic translate: empty response")
	}
	return strings.TrimSpace(out.String()), nil
}
