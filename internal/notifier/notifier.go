// Package notifier implements the gateway that fans committed state-change
// events out to connected clients. Delivery is best-effort: a failed publish
// is logged and dropped, never surfaced back into the booking flow.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cinetix/booking-engine/internal/domain"
)

const publishTimeout = 2 * time.Second

// DefaultChannel is the Redis channel booking events are published to.
const DefaultChannel = "booking.events"

// Envelope is the wire format published for every event.
type Envelope struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Payload   any       `json:"payload"`
	EmittedAt time.Time `json:"emittedAt"`
}

// RedisNotifier publishes event envelopes to a Redis channel, from which the
// realtime edge processes broadcast them to their connected clients.
type RedisNotifier struct {
	client  redis.UniversalClient
	channel string
	logger  *slog.Logger
}

func NewRedisNotifier(client redis.UniversalClient, channel string, logger *slog.Logger) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}

	return &RedisNotifier{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

func (n *RedisNotifier) Notify(ctx context.Context, event domain.Event) {
	envelope := Envelope{
		ID:        uuid.NewString(),
		Name:      event.Name,
		Payload:   event.Payload,
		EmittedAt: time.Now().UTC(),
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		n.logger.Error("failed to marshal event", "event", event.Name, "error", err)
		return
	}

	// Detach from the request context so a canceled request does not drop
	// an event for a transition that already committed.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = n.client.Publish(publishCtx, n.channel, string(body)).Err()
	if err != nil {
		n.logger.Error("failed to publish event", "event", event.Name, "error", err)
	}
}

// NoopNotifier discards all events.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, domain.Event) {}
