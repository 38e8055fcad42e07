// Package identity resolves typed usernames to durable player identities.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/emberhollow/proxy/api/grpc/playerv1"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound reports that no player matches the typed username. Every other
// resolver failure is a transient lookup error.
var ErrNotFound = errors.New("player not found")

// Identity is one resolved player. Username carries the identity service's
// canonical casing, which may differ from what the user typed; it is display
// data only and identities compare by ID.
type Identity struct {
	ID       uuid.UUID
	Username string
}

// Resolver converts free-text usernames into player identities via the
// player service. Username matching is case-insensitive on the service side.
type Resolver struct {
	players playerv1.PlayerServiceClient
}

// NewResolver creates a resolver backed by the player service.
func NewResolver(players playerv1.PlayerServiceClient) *Resolver {
	return &Resolver{players: players}
}

// Resolve looks a player up by typed username. It returns ErrNotFound when
// the service knows no such player and a wrapped transient error otherwise.
func (r *Resolver) Resolve(ctx context.Context, username string) (Identity, error) {
	if r == nil || r.players == nil {
		return Identity{}, errors.New("player service is not configured")
	}
	resp, err := r.players.GetPlayerByUsername(ctx, &playerv1.GetPlayerByUsernameRequest{Username: username})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Identity{}, ErrNotFound
		}
		return Identity{}, fmt.Errorf("resolve username %q: %w", username, err)
	}
	return identityFromResponse(resp)
}

// ResolveID looks a player up by durable id, used to render usernames for
// peers that arrive as bare ids (pending request listings).
func (r *Resolver) ResolveID(ctx context.Context, id uuid.UUID) (Identity, error) {
	if r == nil || r.players == nil {
		return Identity{}, errors.New("player service is not configured")
	}
	resp, err := r.players.GetPlayerByID(ctx, &playerv1.GetPlayerByIDRequest{PlayerID: id.String()})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Identity{}, ErrNotFound
		}
		return Identity{}, fmt.Errorf("resolve player id %s: %w", id, err)
	}
	return identityFromResponse(resp)
}

func identityFromResponse(resp *playerv1.PlayerResponse) (Identity, error) {
	if resp == nil {
		return Identity{}, errors.New("player service returned an empty response")
	}
	id, err := uuid.Parse(resp.PlayerID)
	if err != nil {
		return Identity{}, fmt.Errorf("parse player id %q: %w", resp.PlayerID, err)
	}
	return Identity{ID: id, Username: resp.CurrentUsername}, nil
}
