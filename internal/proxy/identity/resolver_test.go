package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/emberhollow/proxy/api/grpc/playerv1"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakePlayerClient struct {
	byUsername func(*playerv1.GetPlayerByUsernameRequest) (*playerv1.PlayerResponse, error)
	byID       func(*playerv1.GetPlayerByIDRequest) (*playerv1.PlayerResponse, error)
}

func (f *fakePlayerClient) GetPlayerByUsername(_ context.Context, in *playerv1.GetPlayerByUsernameRequest, _ ...grpc.CallOption) (*playerv1.PlayerResponse, error) {
	return f.byUsername(in)
}

func (f *fakePlayerClient) GetPlayerByID(_ context.Context, in *playerv1.GetPlayerByIDRequest, _ ...grpc.CallOption) (*playerv1.PlayerResponse, error) {
	return f.byID(in)
}

func TestResolveReturnsCanonicalIdentity(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	resolver := NewResolver(&fakePlayerClient{
		byUsername: func(in *playerv1.GetPlayerByUsernameRequest) (*playerv1.PlayerResponse, error) {
			if in.Username != "StEve" {
				t.Errorf("resolver rewrote the typed username to %q", in.Username)
			}
			return &playerv1.PlayerResponse{PlayerID: id.String(), CurrentUsername: "Steve"}, nil
		},
	})

	got, err := resolver.Resolve(context.Background(), "StEve")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != id {
		t.Fatalf("resolved id %s, want %s", got.ID, id)
	}
	if got.Username != "Steve" {
		t.Fatalf("resolved username %q, want canonical %q", got.Username, "Steve")
	}
}

func TestResolveMapsNotFound(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(&fakePlayerClient{
		byUsername: func(*playerv1.GetPlayerByUsernameRequest) (*playerv1.PlayerResponse, error) {
			return nil, status.Error(codes.NotFound, "no such player")
		},
	})

	_, err := resolver.Resolve(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveWrapsTransientFailures(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(&fakePlayerClient{
		byUsername: func(*playerv1.GetPlayerByUsernameRequest) (*playerv1.PlayerResponse, error) {
			return nil, status.Error(codes.Unavailable, "service down")
		},
	})

	_, err := resolver.Resolve(context.Background(), "steve")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("transient failure must not map to ErrNotFound")
	}
}

func TestResolveRejectsMalformedPlayerID(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(&fakePlayerClient{
		byUsername: func(*playerv1.GetPlayerByUsernameRequest) (*playerv1.PlayerResponse, error) {
			return &playerv1.PlayerResponse{PlayerID: "not-a-uuid", CurrentUsername: "Steve"}, nil
		},
	})

	_, err := resolver.Resolve(context.Background(), "steve")
	if err == nil {
		t.Fatal("expected error for malformed player id")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("malformed id must not map to ErrNotFound")
	}
}

func TestResolveIDReturnsIdentity(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	resolver := NewResolver(&fakePlayerClient{
		byID: func(in *playerv1.GetPlayerByIDRequest) (*playerv1.PlayerResponse, error) {
			if in.PlayerID != id.String() {
				t.Errorf("requested id %q", in.PlayerID)
			}
			return &playerv1.PlayerResponse{PlayerID: id.String(), CurrentUsername: "Alex"}, nil
		},
	})

	got, err := resolver.ResolveID(context.Background(), id)
	if err != nil {
		t.Fatalf("resolve id: %v", err)
	}
	if got.Username != "Alex" {
		t.Fatalf("resolved username %q", got.Username)
	}
}
