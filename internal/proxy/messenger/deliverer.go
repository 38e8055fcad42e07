package messenger

import (
	"github.com/google/uuid"
	"golang.org/x/text/message"

	"github.com/emberhollow/proxy/internal/proxy/eventbus"
)

// Sessions delivers rendered text to a connected player.
type Sessions interface {
	Send(id uuid.UUID, text string) bool
}

// Deliverer subscribes to inbound whispers and renders them to the
// receiving session. Whispers for players who already left the proxy are
// dropped silently.
type Deliverer struct {
	sessions Sessions
	printer  *message.Printer
}

// NewDeliverer creates a deliverer rendering with the given printer.
func NewDeliverer(sessions Sessions, printer *message.Printer) *Deliverer {
	return &Deliverer{sessions: sessions, printer: printer}
}

// Register subscribes the deliverer on the bus.
func (d *Deliverer) Register(bus *eventbus.Bus) {
	bus.SubscribePrivateMessage(d.deliver)
}

func (d *Deliverer) deliver(evt eventbus.PrivateMessageReceived) {
	text := d.printer.Sprintf("message.private.received", evt.SenderUsername, evt.Message)
	_ = d.sessions.Send(evt.ReceiverID, text)
}
