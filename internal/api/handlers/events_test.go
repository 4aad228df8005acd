package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/speechify-bot/speechify/internal/bot"
	"github.com/speechify-bot/speechify/internal/flow"
	"github.com/speechify-bot/speechify/internal/language"
	"github.com/speechify-bot/speechify/internal/store"
)

func newTestHandler() *EventsHandler {
	prefs := store.NewMemory()
	// Translator and synthesizer stay nil: the events exercised here
	// never reach finalization.
	machine := flow.NewMachine(flow.NewMemoryStore(), prefs, nil, nil, language.NewDetector(), slog.Default())
	return NewEventsHandler(bot.NewDispatcher(machine, prefs, nil, slog.Default()))
}

func TestEventsPost(t *testing.T) {
	is := is.New(t)
	h := newTestHandler()

	body := `{"user_id": 42, "event_kind": "text", "payload": "/start"}`
	req := httptest.NewRequest("POST", "/events", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Post(rec, req)

	is.Equal(rec.Code, http.StatusOK)
	is.True(strings.Contains(rec.Body.String(), "Welcome to Speechify"))
	is.True(strings.Contains(rec.Body.String(), "choice_set"))
}

func TestEventsPostRejectsBadInput(t *testing.T) {
	is := is.New(t)
	h := newTestHandler()

	cases := []string{
		`not json`,
		`{"event_kind": "text", "payload": "hi"}`,         // missing user_id
		`{"user_id": 1, "event_kind": "voice", "payload": "x"}`, // unknown kind
	}

	for _, body := range cases {
		req := httptest.NewRequest("POST", "/events", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Post(rec, req)
		is.Equal(rec.Code, http.StatusBadRequest)
	}
}
