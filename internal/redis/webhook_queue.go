package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"

	"github.com/redis/go-redis/v9"
)

// WebhookQueue buffers committed events for the webhook sender worker.
// Delivery is decoupled from the mutating call: enqueue happens after commit
// and a slow downstream never blocks the request path.
type WebhookQueue struct {
	client *redis.Client
	key    string
}

func NewWebhookQueue(client *redis.Client, key string) *WebhookQueue {
	return &WebhookQueue{client: client, key: key}
}

func (q *WebhookQueue) Enqueue(ctx context.Context, ev domain.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *WebhookQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.Event, error) {
	var ev domain.Event

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}
