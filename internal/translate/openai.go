package translate

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/speechify-bot/speechify/internal/config"
	"github.com/speechify-bot/speechify/internal/language"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAI translates through a chat completion.
type OpenAI struct {
	client *openai.Client
	model  string
	det    language.Detector
}

func NewOpenAI(cfg config.TranslateConfig, det language.Detector) *OpenAI {
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAI{
		client: openai.NewClient(cfg.OpenAIKey),
		model:  model,
		det:    det,
	}
}

func (p *OpenAI) Name() string { return "openai" }

func (p *OpenAI) Translate(ctx context.Context, text, source, target string) (string, error) {
	if err := checkSource(p.det, text, source); err != nil {
		return "", err
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(source, target)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai translate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai translate: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func systemPrompt(source, target string) string {
	return fmt.Sprintf(
		"Translate the user's message from %s to %s. Reply with the translation only, no commentary.",
		language.NameOf(source), language.NameOf(target),
	)
}
