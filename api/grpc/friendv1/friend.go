// Package friendv1 contains hand-maintained bindings for the relationship
// service (friend.v1). Messages travel as JSON bodies over gRPC using the
// platform json codec.
//
// Every operation returns one code from a closed result set. Codes the
// bindings do not recognize decode into the operation's explicit Unknown
// value; they are never coerced into a known result and never fail decoding,
// so the service can grow new codes without breaking older proxies.
package friendv1

import (
	"context"
	"encoding/json"
	"time"

	"github.com/emberhollow/proxy/internal/platform/grpc/jsoncodec"
	"google.golang.org/grpc"
)

const servicePrefix = "/friend.v1.FriendService/"

// AddResult is the closed result set of AddFriend.
type AddResult int

const (
	// AddResultUnknown marks a wire code these bindings do not recognize.
	AddResultUnknown AddResult = iota
	// AddResultAdded means the pair is now friends (an incoming request was
	// accepted by this call).
	AddResultAdded
	// AddResultAlreadyFriends means the pair was already friends.
	AddResultAlreadyFriends
	// AddResultRequestSent means a new outgoing request was created.
	AddResultRequestSent
	// AddResultPrivacyBlocked means the target's privacy settings reject
	// friend requests from the issuer.
	AddResultPrivacyBlocked
	// AddResultAlreadyRequested means an identical outgoing request was
	// already pending.
	AddResultAlreadyRequested
)

var addResultCodes = map[AddResult]string{
	AddResultAdded:            "FRIEND_ADDED",
	AddResultAlreadyFriends:   "ALREADY_FRIENDS",
	AddResultRequestSent:      "REQUEST_SENT",
	AddResultPrivacyBlocked:   "PRIVACY_BLOCKED",
	AddResultAlreadyRequested: "ALREADY_REQUESTED",
}

// String reports the wire code, or UNKNOWN for unrecognized values.
func (r AddResult) String() string {
	if code, ok := addResultCodes[r]; ok {
		return code
	}
	return "UNKNOWN"
}

// MarshalJSON encodes the result as its wire code.
func (r AddResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a wire code, mapping unrecognized codes to
// AddResultUnknown.
func (r *AddResult) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	*r = AddResultUnknown
	for result, known := range addResultCodes {
		if known == code {
			*r = result
			break
		}
	}
	return nil
}

// RequestResult is the closed result set shared by DenyFriendRequest and
// RevokeFriendRequest.
type RequestResult int

const (
	// RequestResultUnknown marks a wire code these bindings do not recognize.
	RequestResultUnknown RequestResult = iota
	// RequestResultDenied means the pending request was removed.
	RequestResultDenied
	// RequestResultNoRequest means no pending request existed for the pair.
	RequestResultNoRequest
)

var requestResultCodes = map[RequestResult]string{
	RequestResultDenied:    "DENIED",
	RequestResultNoRequest: "NO_REQUEST",
}

// String reports the wire code, or UNKNOWN for unrecognized values.
func (r RequestResult) String() string {
	if code, ok := requestResultCodes[r]; ok {
		return code
	}
	return "UNKNOWN"
}

// MarshalJSON encodes the result as its wire code.
func (r RequestResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a wire code, mapping unrecognized codes to
// RequestResultUnknown.
func (r *RequestResult) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	*r = RequestResultUnknown
	for result, known := range requestResultCodes {
		if known == code {
			*r = result
			break
		}
	}
	return nil
}

// RemoveResult is the closed result set of RemoveFriend.
type RemoveResult int

const (
	// RemoveResultUnknown marks a wire code these bindings do not recognize.
	RemoveResultUnknown RemoveResult = iota
	// RemoveResultRemoved means the friendship was removed.
	RemoveResultRemoved
	// RemoveResultNotFriends means the pair was not friends.
	RemoveResultNotFriends
)

var removeResultCodes = map[RemoveResult]string{
	RemoveResultRemoved:    "REMOVED",
	RemoveResultNotFriends: "NOT_FRIENDS",
}

// String reports the wire code, or UNKNOWN for unrecognized values.
func (r RemoveResult) String() string {
	if code, ok := removeResultCodes[r]; ok {
		return code
	}
	return "UNKNOWN"
}

// MarshalJSON encodes the result as its wire code.
func (r RemoveResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a wire code, mapping unrecognized codes to
// RemoveResultUnknown.
func (r *RemoveResult) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	*r = RemoveResultUnknown
	for result, known := range removeResultCodes {
		if known == code {
			*r = result
			break
		}
	}
	return nil
}

// Direction selects which side of the pending-request relation an operation
// addresses, from the issuer's perspective.
type Direction int

const (
	// DirectionUnknown marks a wire code these bindings do not recognize.
	DirectionUnknown Direction = iota
	// DirectionIncoming addresses requests sent to the issuer.
	DirectionIncoming
	// DirectionOutgoing addresses requests sent by the issuer.
	DirectionOutgoing
)

var directionCodes = map[Direction]string{
	DirectionIncoming: "INCOMING",
	DirectionOutgoing: "OUTGOING",
}

// String reports the wire code, or UNKNOWN for unrecognized values.
func (d Direction) String() string {
	if code, ok := directionCodes[d]; ok {
		return code
	}
	return "UNKNOWN"
}

// MarshalJSON encodes the direction as its wire code.
func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a wire code, mapping unrecognized codes to
// DirectionUnknown.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	*d = DirectionUnknown
	for direction, known := range directionCodes {
		if known == code {
			*d = direction
			break
		}
	}
	return nil
}

// AddFriendRequest asks the service to add or accept a friend relation.
type AddFriendRequest struct {
	IssuerID string `json:"issuer_id"`
	// IssuerUsername is carried for the notification shown to the target.
	IssuerUsername string `json:"issuer_username"`
	TargetID       string `json:"target_id"`
}

// AddFriendResponse reports the add outcome. FriendsSince is only meaningful
// for FRIEND_ADDED.
type AddFriendResponse struct {
	Result       AddResult `json:"result"`
	FriendsSince time.Time `json:"friends_since"`
}

// DenyFriendRequestRequest removes a pending incoming request.
type DenyFriendRequestRequest struct {
	IssuerID string `json:"issuer_id"`
	TargetID string `json:"target_id"`
}

// DenyFriendRequestResponse reports the deny outcome.
type DenyFriendRequestResponse struct {
	Result RequestResult `json:"result"`
}

// RevokeFriendRequestRequest removes a pending outgoing request.
type RevokeFriendRequestRequest struct {
	IssuerID string `json:"issuer_id"`
	TargetID string `json:"target_id"`
}

// RevokeFriendRequestResponse reports the revoke outcome.
type RevokeFriendRequestResponse struct {
	Result RequestResult `json:"result"`
}

// RemoveFriendRequest removes an established friendship.
type RemoveFriendRequest struct {
	IssuerID string `json:"issuer_id"`
	TargetID string `json:"target_id"`
}

// RemoveFriendResponse reports the remove outcome.
type RemoveFriendResponse struct {
	Result RemoveResult `json:"result"`
}

// Friend is one established relation from the requesting player's view.
type Friend struct {
	PlayerID     string    `json:"player_id"`
	FriendsSince time.Time `json:"friends_since"`
}

// ListFriendsRequest fetches the full friend set for a player.
type ListFriendsRequest struct {
	PlayerID string `json:"player_id"`
}

// ListFriendsResponse carries the player's established relations.
type ListFriendsResponse struct {
	Friends []*Friend `json:"friends"`
}

// PendingRequest is one pending request from the requesting player's view.
type PendingRequest struct {
	PlayerID    string    `json:"player_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// ListPendingRequestsRequest fetches pending requests in one direction.
type ListPendingRequestsRequest struct {
	PlayerID  string    `json:"player_id"`
	Direction Direction `json:"direction"`
}

// ListPendingRequestsResponse carries pending requests in one direction.
type ListPendingRequestsResponse struct {
	Requests []*PendingRequest `json:"requests"`
}

// PurgeFriendRequestsRequest removes every pending request in one direction.
type PurgeFriendRequestsRequest struct {
	PlayerID  string    `json:"player_id"`
	Direction Direction `json:"direction"`
}

// PurgeFriendRequestsResponse reports how many requests were removed.
type PurgeFriendRequestsResponse struct {
	Purged int `json:"purged"`
}

// FriendServiceClient is the client API for the friend.v1.FriendService.
type FriendServiceClient interface {
	AddFriend(ctx context.Context, in *AddFriendRequest, opts ...grpc.CallOption) (*AddFriendResponse, error)
	DenyFriendRequest(ctx context.Context, in *DenyFriendRequestRequest, opts ...grpc.CallOption) (*DenyFriendRequestResponse, error)
	RevokeFriendRequest(ctx context.Context, in *RevokeFriendRequestRequest, opts ...grpc.CallOption) (*RevokeFriendRequestResponse, error)
	RemoveFriend(ctx context.Context, in *RemoveFriendRequest, opts ...grpc.CallOption) (*RemoveFriendResponse, error)
	ListFriends(ctx context.Context, in *ListFriendsRequest, opts ...grpc.CallOption) (*ListFriendsResponse, error)
	ListPendingRequests(ctx context.Context, in *ListPendingRequestsRequest, opts ...grpc.CallOption) (*ListPendingRequestsResponse, error)
	PurgeFriendRequests(ctx context.Context, in *PurgeFriendRequestsRequest, opts ...grpc.CallOption) (*PurgeFriendRequestsResponse, error)
}

type friendServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFriendServiceClient creates a friend service client on the given connection.
func NewFriendServiceClient(cc grpc.ClientConnInterface) FriendServiceClient {
	return &friendServiceClient{cc: cc}
}

func (c *friendServiceClient) AddFriend(ctx context.Context, in *AddFriendRequest, opts ...grpc.CallOption) (*AddFriendResponse, error) {
	out := new(AddFriendResponse)
	if err := c.cc.Invoke(ctx, servicePrefix+"AddFriend", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *friendServiceClient) DenyFriendRequest(ctx context.Context, in *DenyFriendRequestRequest, opts ...grpc.CallOption) (*DenyFriendRequestResponse, error) {
	out := new(DenyFriendRequestResponse)
	if err := c.cc.Invoke(ctx, servicePrefix+"DenyFriendRequest", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *friendServiceClient) RevokeFriendRequest(ctx context.Context, in *RevokeFriendRequestRequest, opts ...grpc.CallOption) (*RevokeFriendRequestResponse, error) {
	out := new(RevokeFriendRequestResponse)
	if err := c.cc.Invoke(ctx, servicePrefix+"RevokeFriendRequest", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *friendServiceClient) RemoveFriend(ctx context.Context, in *RemoveFriendRequest, opts ...grpc.CallOption) (*RemoveFriendResponse, error) {
	out := new(RemoveFriendResponse)
	if err := c.cc.Invoke(ctx, servicePrefix+"RemoveFriend", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *friendServiceClient) ListFriends(ctx context.Context, in *ListFriendsRequest, opts ...grpc.CallOption) (*ListFriendsResponse, error) {
	out := new(ListFriendsResponse)
	if err := c.cc.Invoke(ctx, servicePrefix+"ListFriends", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *friendServiceClient) ListPendingRequests(ctx context.Context, in *ListPendingRequestsRequest, opts ...grpc.CallOption) (*ListPendingRequestsResponse, error) {
	out := new(ListPendingRequestsResponse)
	if err := c.cc.Invoke(ctx, servicePrefix+"ListPendingRequests", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *friendServiceClient) PurgeFriendRequests(ctx context.Context, in *PurgeFriendRequestsRequest, opts ...grpc.CallOption) (*PurgeFriendRequestsResponse, error) {
	out := new(PurgeFriendRequestsResponse)
	if err := c.cc.Invoke(ctx, servicePrefix+"PurgeFriendRequests", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withJSONCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(jsoncodec.Name)}, opts...)
}
