package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// envelope is the wire format written to a stream entry.
type envelope struct {
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// StreamNotifier implements usecase.Notifier on top of Redis streams.
// Each topic maps to a stream of the same name.
type StreamNotifier struct {
	client *redis.Client
}

// NewStreamNotifier creates a new StreamNotifier.
func NewStreamNotifier(client *redis.Client) *StreamNotifier {
	return &StreamNotifier{client: client}
}

// Publish appends the payload to the topic's stream.
func (n *StreamNotifier) Publish(ctx context.Context, topic string, payload any) error {
	event := envelope{
		Topic:     topic,
		Timestamp: time.Now().UTC(),
		Data:      payload,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: topic,
		Values: map[string]any{
			"event": eventJSON,
		},
	}

	if _, err := n.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
