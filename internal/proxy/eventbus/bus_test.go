package eventbus

import (
	"testing"

	"github.com/google/uuid"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	bus := New()

	var first, second []PrivateMessageReceived
	bus.SubscribePrivateMessage(func(evt PrivateMessageReceived) { first = append(first, evt) })
	bus.SubscribePrivateMessage(func(evt PrivateMessageReceived) { second = append(second, evt) })

	evt := PrivateMessageReceived{SenderUsername: "Steve", ReceiverID: uuid.New(), Message: "hi"}
	bus.PublishPrivateMessage(evt)

	if len(first) != 1 || first[0] != evt {
		t.Fatalf("first subscriber got %v", first)
	}
	if len(second) != 1 || second[0] != evt {
		t.Fatalf("second subscriber got %v", second)
	}
}

func TestPublishWithoutSubscribersIsSafe(t *testing.T) {
	t.Parallel()

	bus := New()
	bus.PublishPrivateMessage(PrivateMessageReceived{SenderUsername: "Steve"})
}

func TestNilBusSafe(t *testing.T) {
	t.Parallel()

	var bus *Bus
	bus.SubscribePrivateMessage(func(PrivateMessageReceived) {})
	bus.PublishPrivateMessage(PrivateMessageReceived{})
}
