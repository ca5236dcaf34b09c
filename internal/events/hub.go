package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"

	"github.com/google/uuid"
)

// Hub fans committed events out to every subscriber connected at publish
// time. Delivery is best-effort and at-most-once: a full subscriber buffer
// means the event is dropped for that subscriber, never that the publisher
// blocks. Subscribers joining later do not see earlier events.
type Hub struct {
	mu      sync.RWMutex
	subs    map[uuid.UUID]chan domain.Event
	bufSize int
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger, bufSize int) *Hub {
	if bufSize <= 0 {
		bufSize = 16
	}
	return &Hub{
		subs:    make(map[uuid.UUID]chan domain.Event),
		bufSize: bufSize,
		logger:  logger,
	}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called when the subscriber disconnects; it closes the channel.
func (h *Hub) Subscribe() (<-chan domain.Event, func()) {
	id := uuid.New()
	ch := make(chan domain.Event, h.bufSize)

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers ev to all current subscribers without blocking. Called
// synchronously after each commit, so per-request order follows commit order.
func (h *Hub) Publish(ctx context.Context, ev domain.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("subscriber buffer full, event dropped",
				slog.String("subscriber", id.String()),
				slog.String("event", string(ev.Type)),
			)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
