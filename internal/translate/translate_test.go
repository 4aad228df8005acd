package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
	openai "github.com/sashabaranov/go-openai"

	"github.com/speechify-bot/speechify/internal/language"
)

// fixedDetector always reports the same language.
type fixedDetector struct{ lang string }

func (d fixedDetector) Detect(string) string { return d.lang }

func TestTranslateRejectsMismatchedSource(t *testing.T) {
	is := is.New(t)

	p := &OpenAI{det: fixedDetector{lang: language.French}}

	_, err := p.Translate(context.Background(), "bonjour", language.English, language.Russian)
	var mismatch *MismatchError
	is.True(errors.As(err, &mismatch)) // detected != declared source must fail
	is.Equal(mismatch.Expected, language.English)
	is.Equal(mismatch.Detected, language.French)
}

func TestOpenAITranslate(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		is.NoErr(json.NewDecoder(r.Body).Decode(&req))
		is.Equal(len(req.Messages), 2)
		is.Equal(req.Messages[1].Content, "hello world")

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: "assistant", Content: "привет мир"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	clientCfg := openai.DefaultConfig("test-key")
	clientCfg.BaseURL = srv.URL + "/v1"
	p := &OpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		model:  defaultOpenAIModel,
		det:    fixedDetector{lang: language.English},
	}

	out, err := p.Translate(context.Background(), "hello world", language.English, language.Russian)
	is.NoErr(err)
	is.Equal(out, "привет мир")
}

func TestNewUnknownBackend(t *testing.T) {
	is := is.New(t)

	_, err := New(configWith("deepl"), language.NewDetector())
	is.True(err != nil)
}

func TestNewSelectsBackend(t *testing.T) {
	is := is.New(t)

	tr, err := New(configWith("openai"), language.NewDetector())
	is.NoErr(err)
	is.Equal(tr.Name(), "openai")

	tr, err = New(configWith("anthropic"), language.NewDetector())
	is.NoErr(err)
	is.Equal(tr.Name(), "anthropic")
}
