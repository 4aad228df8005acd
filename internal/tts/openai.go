package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/speechify-bot/speechify/internal/config"
)

// OpenAI synthesizes speech using OpenAI's speech endpoint. Alternative
// backend for running without AWS credentials; since the endpoint only
// accepts its own lowercase voice names, the offered voice ids are mapped
// onto them and unknown ones fall back to the default voice.
type OpenAI struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewOpenAI(cfg config.TTSConfig) *OpenAI {
	baseURL := cfg.OpenAIBaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := cfg.OpenAIModel
	if model == "" {
		model = "tts-1"
	}
	return &OpenAI{
		apiKey:  cfg.OpenAIKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (o *OpenAI) Name() string { return "openai-tts" }

var openAIVoices = map[string]string{
	"Joanna":   "nova",
	"Matthew":  "onyx",
	"Salli":    "shimmer",
	"Justin":   "echo",
	"Kimberly": "fable",
	"Ivy":      "nova",
	"Raveena":  "alloy",
	"Joey":     "echo",
	"Tatyana":  "nova",
}

func (o *OpenAI) Synthesize(ctx context.Context, text, voiceID string) (*Result, error) {
	voice, ok := openAIVoices[voiceID]
	if !ok {
		voice = "alloy"
	}

	body := map[string]any{
		"model": o.model,
		"input": text,
		"voice": voice,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/audio/speech", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("tts failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}

	return &Result{Audio: audio, ContentType: "audio/mpeg"}, nil
}
