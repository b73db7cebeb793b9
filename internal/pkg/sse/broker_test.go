package sse

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBroadcastReachesOnlyTargetUser(t *testing.T) {
	broker := NewBroker()

	target := make(chan Event, 1)
	bystander := make(chan Event, 1)
	broker.Register(1, target)
	broker.Register(2, bystander)
	defer broker.Unregister(1, target)
	defer broker.Unregister(2, bystander)

	broker.Broadcast(Event{Type: "notification", Data: map[string]string{"message": "hi"}, UserID: 1})

	select {
	case event := <-target:
		if event.Type != "notification" {
			t.Errorf("type = %q", event.Type)
		}
		if _, ok := event.Data.(json.RawMessage); !ok {
			t.Errorf("data type = %T, want json.RawMessage", event.Data)
		}
	case <-time.After(time.Second):
		t.Fatal("target received nothing")
	}

	select {
	case <-bystander:
		t.Error("bystander received a foreign event")
	default:
	}
}

func TestBroadcastSkipsBlockedChannels(t *testing.T) {
	broker := NewBroker()

	blocked := make(chan Event) // unbuffered, nobody reading
	broker.Register(1, blocked)
	defer broker.Unregister(1, blocked)

	done := make(chan struct{})
	go func() {
		broker.Broadcast(Event{Type: "notification", Data: "x", UserID: 1})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a slow client")
	}
}

func TestUnregisterClosesChannel(t *testing.T) {
	broker := NewBroker()

	ch := make(chan Event, 1)
	broker.Register(1, ch)
	if got := broker.ClientCount(1); got != 1 {
		t.Errorf("ClientCount = %d, want 1", got)
	}

	broker.Unregister(1, ch)
	if got := broker.ClientCount(1); got != 0 {
		t.Errorf("ClientCount after Unregister = %d, want 0", got)
	}

	if _, open := <-ch; open {
		t.Error("channel still open after Unregister")
	}

	// Broadcasting to a user with no clients is a no-op
	broker.Broadcast(Event{Type: "notification", Data: "x", UserID: 1})
}
