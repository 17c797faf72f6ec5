// internal/events/multi.go
package events

// MultiNotifier fans an event out to every configured backend.
type MultiNotifier []Notifier

func (m MultiNotifier) Publish(topic string, payload any) {
	for _, n := range m {
		n.Publish(topic, payload)
	}
}
