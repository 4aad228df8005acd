package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/speechify-bot/speechify/internal/artifact"
)

// ArtifactWorker handles artifact archive and purge tasks.
type ArtifactWorker struct {
	store *artifact.Store
}

func NewArtifactWorker(store *artifact.Store) *ArtifactWorker {
	return &ArtifactWorker{store: store}
}

func (w *ArtifactWorker) HandleArchive(ctx context.Context, t *asynq.Task) error {
	var p ArtifactArchivePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal archive payload: %w", err)
	}

	path, err := w.store.Save(p.UserID, p.Audio)
	if err != nil {
		return fmt.Errorf("archive artifact for user %d: %w", p.UserID, err)
	}
	slog.Info("archived artifact", "user_id", p.UserID, "path", path, "bytes", len(p.Audio))
	return nil
}

func (w *ArtifactWorker) HandlePurge(ctx context.Context, t *asynq.Task) error {
	removed, err := w.store.Purge()
	if err != nil {
		return fmt.Errorf("purge artifacts: %w", err)
	}
	slog.Info("purged artifacts", "removed", removed)
	return nil
}

// NewMux wires task types to their handlers.
func NewMux(w *ArtifactWorker) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeArtifactArchive, w.HandleArchive)
	mux.HandleFunc(TypeArtifactPurge, w.HandlePurge)
	return mux
}
