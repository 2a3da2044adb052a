package notifier

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
)

// LogNotifier implements usecase.Notifier by writing events to the log.
// Useful for local development where no broker is available.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Publish logs the event.
func (n *LogNotifier) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	n.logger.Info().
		Str("topic", topic).
		RawJSON("payload", data).
		Msg("event published")

	return nil
}
