// internal/events/redis.go
package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier publishes events on Redis pub/sub channels, one channel per
// topic. Subscription fan-out (e.g. websocket bridges) lives outside this
// service.
type RedisNotifier struct {
	Client *redis.Client
}

func NewRedisNotifier(addr string) *RedisNotifier {
	return &RedisNotifier{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (n *RedisNotifier) Publish(topic string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Println("⚠️ failed to encode event payload:", err)
		return
	}
	if err := n.Client.Publish(context.Background(), topic, body).Err(); err != nil {
		log.Println("⚠️ failed to publish event to redis:", err)
	}
}

func (n *RedisNotifier) Close() error {
	return n.Client.Close()
}
