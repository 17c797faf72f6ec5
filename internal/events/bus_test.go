package events

import (
	"errors"
	"testing"
)

func TestBusFansOutToSubscribers(t *testing.T) {
	bus := NewBus()

	var first, second []any
	bus.Subscribe(TopicVersionCreated, func(payload any) error {
		first = append(first, payload)
		return nil
	})
	bus.Subscribe(TopicVersionCreated, func(payload any) error {
		second = append(second, payload)
		return nil
	})

	bus.Publish(TopicVersionCreated, "ver-1")

	if len(first) != 1 || first[0] != "ver-1" {
		t.Errorf("first handler got %v", first)
	}
	if len(second) != 1 || second[0] != "ver-1" {
		t.Errorf("second handler got %v", second)
	}
}

func TestBusHandlerFailureDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(TopicAIGenerated, func(any) error {
		return errors.New("handler broke")
	})
	called := false
	bus.Subscribe(TopicAIGenerated, func(any) error {
		called = true
		return nil
	})

	bus.Publish(TopicAIGenerated, "ver-1")

	if !called {
		t.Error("expected remaining handler to run after a failure")
	}
}

func TestBusTopicsAreIndependent(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.Subscribe(TopicCampaignCreated, func(any) error {
		calls++
		return nil
	})

	bus.Publish(TopicCampaignUpdated, "camp-1")
	if calls != 0 {
		t.Errorf("expected no delivery on another topic, got %d calls", calls)
	}

	// Publishing with no subscribers at all is a silent drop.
	bus.Publish(TopicCampaignDeleted, "camp-1")
}
