// Package timeouts defines shared timeout constants used across the proxy.
// Centralizing these values keeps service boundaries from drifting apart and
// makes the durations discoverable.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a gRPC peer.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single outbound gRPC request from
// the proxy to a backend service.
const GRPCRequest = 2 * time.Second

// Shutdown limits how long the proxy waits for in-flight work during
// graceful shutdown.
const Shutdown = 5 * time.Second
