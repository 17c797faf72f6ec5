// internal/events/bus.go
package events

import (
	"log"
	"sync"
)

// Bus is an in-process publish/subscribe notifier. Handlers registered via
// Subscribe receive every payload published on their topic. Delivery is
// synchronous and fire-and-forget: a failing handler is logged and neither
// blocks the remaining handlers nor reaches the publisher.
type Bus struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]func(payload any) error),
	}
}

// Subscribe adds a handler for a topic.
func (b *Bus) Subscribe(topic string, handler func(payload any) error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish fans the payload out to every subscriber of the topic. With no
// subscribers the event is dropped.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.Lock()
	handlers := append([]func(payload any) error(nil), b.handlers[topic]...)
	b.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(payload); err != nil {
			log.Printf("⚠️ event handler failed for %s: %v\n", topic, err)
		}
	}
}

var _ Notifier = (*Bus)(nil)
