package presence

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Event names on the publish fabric. Subscribers (socket fan-out, other
// nodes) pick these up; the core never waits for an acknowledgment.
const (
	EventPresence       = "presence"
	EventProfileUpdated = "profile:updated"
	EventMessagePosted  = "message:posted"
)

type Publisher interface {
	Publish(ctx context.Context, event string, payload any) error
}

type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, event, data).Err()
}
