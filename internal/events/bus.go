package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Publisher is the injected dependency handlers and services produce events
// through. Nothing reaches for a process-wide broadcaster.
type Publisher interface {
	Publish(ctx context.Context, ev domain.Event)
}

const channel = "events:committed"

// Bus couples the local Hub with a redis Pub/Sub bridge so every instance's
// subscribers observe every committed transition. Events carry the origin
// instance ID; the bridge drops its own echo so local subscribers see each
// event at most once.
type Bus struct {
	hub      *Hub
	client   *goredis.Client
	instance string
	logger   *slog.Logger
}

func NewBus(hub *Hub, client *goredis.Client, logger *slog.Logger) *Bus {
	return &Bus{
		hub:      hub,
		client:   client,
		instance: uuid.NewString(),
		logger:   logger,
	}
}

// Publish fans out locally first, then mirrors onto redis. Both paths are
// fire-and-forget relative to the committed mutation: a redis failure is
// logged, never surfaced to the caller.
func (b *Bus) Publish(ctx context.Context, ev domain.Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	ev.Origin = b.instance

	b.hub.Publish(ctx, ev)

	if b.client == nil {
		return
	}
	body, err := json.Marshal(ev)
	if err != nil {
		b.logger.Error("marshal event failed", slog.Any("error", err))
		return
	}
	if err := b.client.Publish(ctx, channel, body).Err(); err != nil {
		b.logger.Error("redis publish failed", slog.Any("error", err), slog.String("event", string(ev.Type)))
	}
}

// Run consumes the redis channel and feeds remote events into the local hub
// until ctx is canceled.
func (b *Bus) Run(ctx context.Context) {
	if b.client == nil {
		<-ctx.Done()
		return
	}

	sub := b.client.Subscribe(ctx, channel)
	defer sub.Close()

	b.logger.Info("event bridge STARTED", slog.String("channel", channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("event bridge STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case msg, ok := <-ch:
			if !ok {
				if !errors.Is(ctx.Err(), context.Canceled) {
					b.logger.Warn("event bridge channel closed")
				}
				return
			}
			var ev domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				b.logger.Error("unmarshal event failed", slog.Any("error", err))
				continue
			}
			if ev.Origin == b.instance {
				continue
			}
			b.hub.Publish(ctx, ev)
		}
	}
}
