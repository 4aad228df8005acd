package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"

	"github.com/speechify-bot/speechify/internal/config"
)

func TestValidVoice(t *testing.T) {
	is := is.New(t)

	for _, v := range Voices {
		is.True(ValidVoice(v))
	}
	is.True(!ValidVoice("Tatyana")) // override voice is not user-selectable
	is.True(!ValidVoice(""))
	is.True(!ValidVoice("alloy"))
}

func TestOpenAISynthesize(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/audio/speech")
		is.Equal(r.Header.Get("Authorization"), "Bearer test-key")

		var body map[string]any
		is.NoErr(json.NewDecoder(r.Body).Decode(&body))
		is.Equal(body["input"], "hello world")
		is.Equal(body["voice"], "nova") // Joanna maps to nova

		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	syn := NewOpenAI(config.TTSConfig{
		OpenAIKey:     "test-key",
		OpenAIBaseURL: srv.URL,
	})

	res, err := syn.Synthesize(context.Background(), "hello world", "Joanna")
	is.NoErr(err)
	is.Equal(string(res.Audio), "mp3-bytes")
	is.Equal(res.ContentType, "audio/mpeg")
}

func TestOpenAISynthesizeFailure(t *testing.T) {
	is := is.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	syn := NewOpenAI(config.TTSConfig{OpenAIKey: "k", OpenAIBaseURL: srv.URL})

	_, err := syn.Synthesize(context.Background(), "hi", "Joanna")
	is.True(err != nil) // non-200 surfaces as an error
}

func TestNewUnknownBackend(t *testing.T) {
	is := is.New(t)

	_, err := New(context.Background(), config.TTSConfig{Backend: "espeak"})
	is.True(err != nil)
}
