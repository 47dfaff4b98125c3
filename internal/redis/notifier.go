package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/aryan-26-prog/LifePulse-AI-sub000/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// Notifier is the room-scoped pub/sub fabric. Publish is fire-and-forget:
// a failed publish is logged and swallowed, it must never fail the state
// transition that triggered it. At-most-once, no replay for late joiners.
type Notifier struct {
	client *goredis.Client
	logger *slog.Logger
}

func NewNotifier(r *Redis, logger *slog.Logger) *Notifier {
	return &Notifier{client: r.Client, logger: logger}
}

func (n *Notifier) Publish(ctx context.Context, room, event string, payload any) {
	msg := domain.Notification{
		Event:   event,
		Payload: payload,
		SentAt:  time.Now().UTC(),
	}

	b, err := json.Marshal(msg)
	if err != nil {
		n.logger.Error("notification marshal failed",
			slog.String("room", room), slog.String("event", event), slog.Any("error", err))
		return
	}

	if err := n.client.Publish(ctx, room, b).Err(); err != nil {
		n.logger.Warn("notification publish failed",
			slog.String("room", room), slog.String("event", event), slog.Any("error", err))
		return
	}

	n.logger.Debug("notification published",
		slog.String("room", room), slog.String("event", event))
}

// Subscribe opens a room subscription for live streaming (SSE). The
// returned channel closes when ctx is done.
func (n *Notifier) Subscribe(ctx context.Context, room string) <-chan domain.Notification {
	sub := n.client.Subscribe(ctx, room)
	out := make(chan domain.Notification)

	go func() {
		defer close(out)
		defer func() {
			if err := sub.Close(); err != nil {
				n.logger.Warn("subscription close failed", slog.String("room", room), slog.Any("error", err))
			}
		}()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var note domain.Notification
				if err := json.Unmarshal([]byte(msg.Payload), &note); err != nil {
					n.logger.Warn("bad notification payload", slog.String("room", room), slog.Any("error", err))
					continue
				}
				select {
				case out <- note:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
