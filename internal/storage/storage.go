// Package storage defines the persistence contracts used by the proxy.
package storage

import (
	"context"
	"time"
)

// TelemetryEvent is one operational observation worth keeping: a transient
// dependency failure or an unrecognized remote result code, with enough
// context to diagnose it later.
type TelemetryEvent struct {
	Timestamp time.Time
	Severity  string
	// Source names the operation that produced the event, e.g.
	// "friends.add_friend".
	Source   string
	Message  string
	PlayerID string
	PeerID   string
}

// TelemetryStore persists operational telemetry events.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, evt TelemetryEvent) error
	ListTelemetryEvents(ctx context.Context, limit int) ([]TelemetryEvent, error)
}
