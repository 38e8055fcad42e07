// Package playerv1 contains hand-maintained bindings for the player identity
// service (player.v1). Messages travel as JSON bodies over gRPC using the
// platform json codec.
//
// GetPlayerByUsername matches case-insensitively and returns the canonical
// casing of the username; callers must render the canonical form, never the
// typed input. Missing players surface as gRPC NotFound status errors.
package playerv1

import (
	"context"

	"github.com/emberhollow/proxy/internal/platform/grpc/jsoncodec"
	"google.golang.org/grpc"
)

const servicePrefix = "/player.v1.PlayerService/"

// GetPlayerByUsernameRequest looks a player up by typed username.
type GetPlayerByUsernameRequest struct {
	Username string `json:"username"`
}

// GetPlayerByIDRequest looks a player up by durable id.
type GetPlayerByIDRequest struct {
	PlayerID string `json:"player_id"`
}

// PlayerResponse describes one resolved player.
type PlayerResponse struct {
	PlayerID string `json:"player_id"`
	// CurrentUsername carries the service's canonical casing.
	CurrentUsername string `json:"current_username"`
}

// PlayerServiceClient is the client API for the player.v1.PlayerService.
type PlayerServiceClient interface {
	GetPlayerByUsername(ctx context.Context, in *GetPlayerByUsernameRequest, opts ...grpc.CallOption) (*PlayerResponse, error)
	GetPlayerByID(ctx context.Context, in *GetPlayerByIDRequest, opts ...grpc.CallOption) (*PlayerResponse, error)
}

type playerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPlayerServiceClient creates a player service client on the given connection.
func NewPlayerServiceClient(cc grpc.ClientConnInterface) PlayerServiceClient {
	return &playerServiceClient{cc: cc}
}

func (c *playerServiceClient) GetPlayerByUsername(ctx context.Context, in *GetPlayerByUsernameRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	out := new(PlayerResponse)
	if err := c.cc.Invoke(ctx, servicePrefix+"GetPlayerByUsername", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *playerServiceClient) GetPlayerByID(ctx context.Context, in *GetPlayerByIDRequest, opts ...grpc.CallOption) (*PlayerResponse, error) {
	out := new(PlayerResponse)
	if err := c.cc.Invoke(ctx, servicePrefix+"GetPlayerByID", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withJSONCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(jsoncodec.Name)}, opts...)
}
