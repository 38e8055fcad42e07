// Package eventbus decouples the gRPC surfaces that receive backend pushes
// from the components reacting to them inside the proxy.
package eventbus

import (
	"sync"

	"github.com/google/uuid"
)

// PrivateMessageReceived is published when a backend service pushes a whisper
// for a player on this proxy.
type PrivateMessageReceived struct {
	SenderUsername string
	ReceiverID     uuid.UUID
	Message        string
}

// Bus fans events out to registered subscribers. Publish runs subscribers
// synchronously on the caller's goroutine.
type Bus struct {
	mu             sync.RWMutex
	privateMessage []func(PrivateMessageReceived)
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// SubscribePrivateMessage registers a subscriber for inbound whispers.
func (b *Bus) SubscribePrivateMessage(fn func(PrivateMessageReceived)) {
	if b == nil || fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.privateMessage = append(b.privateMessage, fn)
}

// PublishPrivateMessage delivers an inbound whisper to every subscriber.
func (b *Bus) PublishPrivateMessage(evt PrivateMessageReceived) {
	if b == nil {
		return
	}
	b.mu.RLock()
	subscribers := b.privateMessage
	b.mu.RUnlock()
	for _, fn := range subscribers {
		fn(evt)
	}
}
