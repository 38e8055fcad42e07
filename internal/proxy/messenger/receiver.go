// Package messenger accepts whispers pushed by backend services and renders
// them into the receiving player's session.
package messenger

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/emberhollow/proxy/api/grpc/proxymsgv1"
	"github.com/emberhollow/proxy/internal/proxy/eventbus"
)

// Receiver implements the proxy's inbound message service. It validates the
// receiver id, hands the whisper to the event bus, and acknowledges. It does
// not care whether the receiver is still connected; delivery is the
// subscriber's problem.
type Receiver struct {
	bus *eventbus.Bus
}

// NewReceiver creates a receiver publishing to the given bus.
func NewReceiver(bus *eventbus.Bus) *Receiver {
	return &Receiver{bus: bus}
}

// ReceiveMessage accepts one whisper pushed by a backend service.
func (r *Receiver) ReceiveMessage(_ context.Context, in *proxymsgv1.PrivateMessage) (*proxymsgv1.ReceiveMessageResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "message is required")
	}
	receiverID, err := uuid.Parse(in.ReceiverID)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid receiver id %q", in.ReceiverID)
	}
	r.bus.PublishPrivateMessage(eventbus.PrivateMessageReceived{
		SenderUsername: in.SenderUsername,
		ReceiverID:     receiverID,
		Message:        in.Message,
	})
	return &proxymsgv1.ReceiveMessageResponse{}, nil
}
