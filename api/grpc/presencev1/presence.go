// Package presencev1 contains hand-maintained bindings for the player
// tracking service (presence.v1). Messages travel as JSON bodies over gRPC
// using the platform json codec.
package presencev1

import (
	"context"

	"github.com/emberhollow/proxy/internal/platform/grpc/jsoncodec"
	"google.golang.org/grpc"
)

const servicePrefix = "/presence.v1.PresenceService/"

// PlayerStatusesRequest asks for the presence of a batch of players.
type PlayerStatusesRequest struct {
	PlayerIDs []string `json:"player_ids"`
}

// PlayerStatus describes the presence of one player.
type PlayerStatus struct {
	PlayerID string `json:"player_id"`
	Online   bool   `json:"online"`
	// ServerID names the backend server the player is connected to, empty
	// when offline.
	ServerID string `json:"server_id"`
}

// PlayerStatusesResponse carries one status per requested player.
type PlayerStatusesResponse struct {
	Statuses []*PlayerStatus `json:"statuses"`
}

// PresenceServiceClient is the client API for the presence.v1.PresenceService.
type PresenceServiceClient interface {
	GetPlayerStatuses(ctx context.Context, in *PlayerStatusesRequest, opts ...grpc.CallOption) (*PlayerStatusesResponse, error)
}

type presenceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPresenceServiceClient creates a presence service client on the given connection.
func NewPresenceServiceClient(cc grpc.ClientConnInterface) PresenceServiceClient {
	return &presenceServiceClient{cc: cc}
}

func (c *presenceServiceClient) GetPlayerStatuses(ctx context.Context, in *PlayerStatusesRequest, opts ...grpc.CallOption) (*PlayerStatusesResponse, error) {
	out := new(PlayerStatusesResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(jsoncodec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, servicePrefix+"GetPlayerStatuses", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
