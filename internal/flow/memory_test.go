package flow

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestMemoryStore(t *testing.T) {
	is := is.New(t)
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, 1)
	is.Equal(err, ErrNoSession)

	sess := &Session{UserID: 1, Phase: PhaseAccumulatingText, Languages: []string{"en", "ru"}, Text: "hello"}
	is.NoErr(s.Replace(ctx, sess))

	got, err := s.Get(ctx, 1)
	is.NoErr(err)
	is.Equal(got.Phase, PhaseAccumulatingText)
	is.Equal(got.Text, "hello")
	is.Equal(got.Languages, []string{"en", "ru"})

	// Mutating a returned session must not leak into the store.
	got.Text = "mutated"
	got.Languages[0] = "fr"
	again, err := s.Get(ctx, 1)
	is.NoErr(err)
	is.Equal(again.Text, "hello")
	is.Equal(again.Languages[0], "en")

	is.NoErr(s.Clear(ctx, 1))
	_, err = s.Get(ctx, 1)
	is.Equal(err, ErrNoSession)

	// Clearing an absent session is a no-op.
	is.NoErr(s.Clear(ctx, 1))
}

func TestPhaseString(t *testing.T) {
	is := is.New(t)

	is.Equal(PhaseIdle.String(), "idle")
	is.Equal(PhaseAwaitingSourceLanguage.String(), "awaiting_source_language")
	is.Equal(PhaseAwaitingTargetLanguage.String(), "awaiting_target_language")
	is.Equal(PhaseAccumulatingText.String(), "accumulating_text")
	is.Equal(Phase(99).String(), "unknown")
}
