package grpc

import (
	"context"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthProbeTimeout  = time.Second
	healthProbeInterval = 200 * time.Millisecond
	healthProbeMaxWait  = time.Second
)

// WaitForHealth polls a backend's health service until it reports SERVING or
// ctx ends. The proxy must not come up against a half-ready backend, so
// DialWithHealth gates every backend connection on this before handing out a
// client. Probes back off from 200ms up to one second.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	healthClient := grpc_health_v1.NewHealthClient(conn)
	wait := healthProbeInterval
	for {
		probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
		resp, err := healthClient.Check(probeCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		if err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			if logf != nil {
				logf("backend health is SERVING")
			}
			return nil
		}
		if logf != nil {
			if err != nil {
				logf("waiting for backend health: %v", err)
			} else {
				logf("waiting for backend health: status %s", resp.GetStatus().String())
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for backend health: %w", ctx.Err())
		case <-time.After(wait):
		}

		if wait < healthProbeMaxWait {
			wait *= 2
			if wait > healthProbeMaxWait {
				wait = healthProbeMaxWait
			}
		}
	}
}
