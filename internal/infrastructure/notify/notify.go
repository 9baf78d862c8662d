// Package notify delivers one-way realtime notifications over Redis pub/sub.
// The socket gateway that fans events out to connected store dashboards
// subscribes to the same channel.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher implements staging.Notifier by publishing JSON payloads to a
// Redis channel.
type Publisher struct {
	client  redis.UniversalClient
	channel string
}

// NewPublisher creates a Redis-backed notifier publishing to channel.
func NewPublisher(client redis.UniversalClient, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

// Emit publishes one event. The event name rides inside the message so a
// single channel can carry multiple event kinds.
func (p *Publisher) Emit(ctx context.Context, event string, payload any) error {
	message, err := json.Marshal(map[string]any{
		"event":   event,
		"payload": payload,
	})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event, err)
	}
	if err := p.client.Publish(ctx, p.channel, message).Err(); err != nil {
		return fmt.Errorf("publish %s event: %w", event, err)
	}
	return nil
}

// Nop is a notifier that drops every event, for tests and setups without a
// realtime gateway.
type Nop struct{}

// Emit implements staging.Notifier.
func (Nop) Emit(context.Context, string, any) error { return nil }
