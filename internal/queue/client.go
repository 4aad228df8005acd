package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/speechify-bot/speechify/internal/config"
)

// Client enqueues background tasks. It also satisfies bot.Archiver so
// the dispatcher can hand off synthesized audio without blocking on disk.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Archive enqueues durable storage of a synthesized artifact.
func (c *Client) Archive(ctx context.Context, userID int64, audio []byte) error {
	return c.enqueue(ctx, TypeArtifactArchive,
		ArtifactArchivePayload{UserID: userID, Audio: audio},
		asynq.MaxRetry(3), asynq.Timeout(time.Minute), asynq.Queue("low"))
}

func (c *Client) enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	task := asynq.NewTask(taskType, data)
	_, err = c.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}
	return nil
}
