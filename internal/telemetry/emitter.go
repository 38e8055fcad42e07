// Package telemetry records operational events for later inspection.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/emberhollow/proxy/internal/storage"
)

// Severity describes the telemetry severity level.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Emitter records operational telemetry events.
type Emitter struct {
	store storage.TelemetryStore
	clock func() time.Time
}

// NewEmitter creates a new telemetry emitter.
func NewEmitter(store storage.TelemetryStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a telemetry event. It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, evt storage.TelemetryEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	return e.store.AppendTelemetryEvent(ctx, evt)
}

// Warnf records a WARN event for the given source and players.
func (e *Emitter) Warnf(ctx context.Context, source, playerID, peerID, format string, args ...any) error {
	return e.Emit(ctx, storage.TelemetryEvent{
		Severity: string(SeverityWarn),
		Source:   source,
		Message:  fmt.Sprintf(format, args...),
		PlayerID: playerID,
		PeerID:   peerID,
	})
}

// Errorf records an ERROR event for the given source and players.
func (e *Emitter) Errorf(ctx context.Context, source, playerID, peerID, format string, args ...any) error {
	return e.Emit(ctx, storage.TelemetryEvent{
		Severity: string(SeverityError),
		Source:   source,
		Message:  fmt.Sprintf(format, args...),
		PlayerID: playerID,
		PeerID:   peerID,
	})
}
