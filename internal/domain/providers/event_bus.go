package providers

import (
	"context"

	"github.com/quickpick/storefront/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// interaction events. Publishing is best-effort: a failed publish never
// blocks or fails the recording path.
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.InteractionEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.InteractionEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannel constants for different event types
const (
	// EventChannelInteractions is the channel for all interaction events
	EventChannelInteractions = "interactions:all"

	// EventChannelActionPrefix is the prefix for per-action channels
	EventChannelActionPrefix = "interactions:"
)

// GetActionChannel returns the channel name for a specific action type
func GetActionChannel(action entities.InteractionAction) string {
	return EventChannelActionPrefix + string(action)
}
