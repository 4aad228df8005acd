package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/speechify-bot/speechify/internal/bot"
)

// EventsHandler is the webhook entry point: one inbound chat event in,
// one reply out. The delivery layer guarantees per-user ordering of its
// posts; cross-user requests run in parallel.
type EventsHandler struct {
	dispatcher *bot.Dispatcher
}

func NewEventsHandler(d *bot.Dispatcher) *EventsHandler {
	return &EventsHandler{dispatcher: d}
}

func (h *EventsHandler) Post(w http.ResponseWriter, r *http.Request) {
	var ev bot.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if ev.UserID == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id required"})
		return
	}
	switch ev.Kind {
	case bot.KindText, bot.KindButton, bot.KindCallback:
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown event_kind"})
		return
	}

	reply := h.dispatcher.Handle(r.Context(), ev)
	writeJSON(w, http.StatusOK, reply)
}
