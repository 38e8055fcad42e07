package friends

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/emberhollow/proxy/api/grpc/friendv1"
	"github.com/emberhollow/proxy/api/grpc/presencev1"
	"github.com/emberhollow/proxy/internal/platform/grpc/pagination"
	"github.com/emberhollow/proxy/internal/platform/timeouts"
	"github.com/emberhollow/proxy/internal/proxy/identity"
	"github.com/emberhollow/proxy/internal/telemetry"
)

// IdentityResolver converts typed usernames and bare player ids into
// resolved identities.
type IdentityResolver interface {
	Resolve(ctx context.Context, username string) (identity.Identity, error)
	ResolveID(ctx context.Context, id uuid.UUID) (identity.Identity, error)
}

// Messenger delivers rendered text to a connected player. Delivery reports
// false when the session already departed; the text is dropped.
type Messenger interface {
	Send(id uuid.UUID, text string) bool
}

// Executor schedules a command chain off the issuing goroutine.
type Executor interface {
	Submit(task func())
}

// OrchestratorConfig carries the orchestrator's collaborators.
type OrchestratorConfig struct {
	Resolver  IdentityResolver
	Friends   friendv1.FriendServiceClient
	Presence  presencev1.PresenceServiceClient
	Cache     *Cache
	Formatter *Formatter
	Executor  Executor
	Sessions  Messenger
	Telemetry *telemetry.Emitter
	PageSize  pagination.PageSizeConfig
}

// Orchestrator runs one asynchronous chain per friend command: resolve the
// target, call the relationship service, apply the cache side effect, and
// render exactly one reply to the issuing session. Execute methods return
// as soon as the chain is scheduled; stages run strictly in order within a
// chain, with no ordering across chains.
type Orchestrator struct {
	resolver  IdentityResolver
	friends   friendv1.FriendServiceClient
	presence  presencev1.PresenceServiceClient
	cache     *Cache
	format    *Formatter
	exec      Executor
	sessions  Messenger
	telemetry *telemetry.Emitter
	pageSize  pagination.PageSizeConfig
}

// NewOrchestrator creates an orchestrator from its collaborators.
func NewOrchestrator(cfg OrchestratorConfig) *Orchestrator {
	pageSize := cfg.PageSize
	if pageSize.Default <= 0 {
		pageSize.Default = 8
	}
	return &Orchestrator{
		resolver:  cfg.Resolver,
		friends:   cfg.Friends,
		presence:  cfg.Presence,
		cache:     cfg.Cache,
		format:    cfg.Formatter,
		exec:      cfg.Executor,
		sessions:  cfg.Sessions,
		telemetry: cfg.Telemetry,
		pageSize:  pageSize,
	}
}

// ExecuteAdd schedules the add-friend chain for the typed target username.
// The issuer's username rides along for the notification shown to the
// target.
func (o *Orchestrator) ExecuteAdd(issuerID uuid.UUID, issuerUsername, targetName string) {
	o.exec.Submit(func() { o.runAdd(issuerID, issuerUsername, targetName) })
}

// ExecuteDeny schedules the deny-request chain.
func (o *Orchestrator) ExecuteDeny(issuerID uuid.UUID, targetName string) {
	o.exec.Submit(func() { o.runDeny(issuerID, targetName) })
}

// ExecuteRevoke schedules the revoke-request chain.
func (o *Orchestrator) ExecuteRevoke(issuerID uuid.UUID, targetName string) {
	o.exec.Submit(func() { o.runRevoke(issuerID, targetName) })
}

// ExecuteRemove schedules the remove-friend chain.
func (o *Orchestrator) ExecuteRemove(issuerID uuid.UUID, targetName string) {
	o.exec.Submit(func() { o.runRemove(issuerID, targetName) })
}

// ExecuteList schedules the friend-list chain for the given 1-based page.
func (o *Orchestrator) ExecuteList(issuerID uuid.UUID, page int) {
	o.exec.Submit(func() { o.runList(issuerID, page) })
}

// ExecuteRequests schedules the pending-requests listing chain.
func (o *Orchestrator) ExecuteRequests(issuerID uuid.UUID, direction friendv1.Direction, page int) {
	o.exec.Submit(func() { o.runRequests(issuerID, direction, page) })
}

// ExecutePurge schedules the purge-requests chain.
func (o *Orchestrator) ExecutePurge(issuerID uuid.UUID, direction friendv1.Direction) {
	o.exec.Submit(func() { o.runPurge(issuerID, direction) })
}

func (o *Orchestrator) runAdd(issuerID uuid.UUID, issuerUsername, targetName string) {
	target, err := o.resolve(targetName)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			o.send(issuerID, o.format.PlayerNotFound(targetName))
			return
		}
		o.reportTransient("friends.add_friend", issuerID, uuid.Nil, "resolve %q: %v", targetName, err)
		o.send(issuerID, o.format.GenericError())
		return
	}

	ctx, cancel := o.callContext()
	defer cancel()
	resp, err := o.friends.AddFriend(ctx, &friendv1.AddFriendRequest{
		IssuerID:       issuerID.String(),
		IssuerUsername: issuerUsername,
		TargetID:       target.ID.String(),
	})
	if err != nil {
		o.reportTransient("friends.add_friend", issuerID, target.ID, "add friend: %v", err)
		o.send(issuerID, o.format.AddFailed(target.Username))
		return
	}

	switch resp.Result {
	case friendv1.AddResultAdded:
		o.cache.Add(issuerID, Edge{PeerID: target.ID, FriendsSince: resp.FriendsSince})
	case friendv1.AddResultUnknown:
		o.reportUnknown("friends.add_friend", issuerID, target.ID)
	}
	o.send(issuerID, o.format.Add(resp.Result, target.Username))
}

func (o *Orchestrator) runDeny(issuerID uuid.UUID, targetName string) {
	target, err := o.resolve(targetName)
	if err != nil {
		// Resolve failures here are uniformly generic, unlike the add
		// chain; not-found is not singled out.
		o.reportTransient("friends.deny_request", issuerID, uuid.Nil, "resolve %q: %v", targetName, err)
		o.send(issuerID, o.format.GenericError())
		return
	}

	ctx, cancel := o.callContext()
	defer cancel()
	resp, err := o.friends.DenyFriendRequest(ctx, &friendv1.DenyFriendRequestRequest{
		IssuerID: issuerID.String(),
		TargetID: target.ID.String(),
	})
	if err != nil {
		o.reportTransient("friends.deny_request", issuerID, target.ID, "deny request: %v", err)
		o.send(issuerID, o.format.DenyFailed(target.Username))
		return
	}
	if resp.Result == friendv1.RequestResultUnknown {
		o.reportUnknown("friends.deny_request", issuerID, target.ID)
	}
	o.send(issuerID, o.format.Deny(resp.Result, target.Username))
}

func (o *Orchestrator) runRevoke(issuerID uuid.UUID, targetName string) {
	target, err := o.resolve(targetName)
	if err != nil {
		o.reportTransient("friends.revoke_request", issuerID, uuid.Nil, "resolve %q: %v", targetName, err)
		o.send(issuerID, o.format.GenericError())
		return
	}

	ctx, cancel := o.callContext()
	defer cancel()
	resp, err := o.friends.RevokeFriendRequest(ctx, &friendv1.RevokeFriendRequestRequest{
		IssuerID: issuerID.String(),
		TargetID: target.ID.String(),
	})
	if err != nil {
		o.reportTransient("friends.revoke_request", issuerID, target.ID, "revoke request: %v", err)
		o.send(issuerID, o.format.RevokeFailed(target.Username))
		return
	}
	if resp.Result == friendv1.RequestResultUnknown {
		o.reportUnknown("friends.revoke_request", issuerID, target.ID)
	}
	o.send(issuerID, o.format.Revoke(resp.Result, target.Username))
}

func (o *Orchestrator) runRemove(issuerID uuid.UUID, targetName string) {
	target, err := o.resolve(targetName)
	if err != nil {
		o.reportTransient("friends.remove_friend", issuerID, uuid.Nil, "resolve %q: %v", targetName, err)
		o.send(issuerID, o.format.GenericError())
		return
	}

	ctx, cancel := o.callContext()
	defer cancel()
	resp, err := o.friends.RemoveFriend(ctx, &friendv1.RemoveFriendRequest{
		IssuerID: issuerID.String(),
		TargetID: target.ID.String(),
	})
	if err != nil {
		o.reportTransient("friends.remove_friend", issuerID, target.ID, "remove friend: %v", err)
		o.send(issuerID, o.format.RemoveFailed(target.Username))
		return
	}
	switch resp.Result {
	case friendv1.RemoveResultRemoved:
		o.cache.Remove(issuerID, target.ID)
	case friendv1.RemoveResultUnknown:
		o.reportUnknown("friends.remove_friend", issuerID, target.ID)
	}
	o.send(issuerID, o.format.Remove(resp.Result, target.Username))
}

func (o *Orchestrator) runList(issuerID uuid.UUID, page int) {
	edges, populated := o.cache.Get(issuerID)
	if !populated {
		remote, err := o.fetchFriends(issuerID)
		if err != nil {
			o.reportTransient("friends.list_friends", issuerID, uuid.Nil, "list friends: %v", err)
			o.send(issuerID, o.format.GenericError())
			return
		}
		o.cache.Put(issuerID, remote)
		edges, _ = o.cache.Get(issuerID)
	}

	if len(edges) == 0 {
		o.send(issuerID, o.format.FriendList(nil, 1, 0))
		return
	}

	page, pages, start, end := o.paginate(len(edges), page)
	pageEdges := edges[start:end]

	entries := make([]ListEntry, len(pageEdges))
	ids := make([]string, len(pageEdges))
	for i, edge := range pageEdges {
		entries[i].Username = o.displayName(edge.PeerID)
		ids[i] = edge.PeerID.String()
	}
	for i, online := range o.onlineStatuses(issuerID, ids) {
		entries[i].Online = online
	}
	o.send(issuerID, o.format.FriendList(entries, page, pages))
}

func (o *Orchestrator) runRequests(issuerID uuid.UUID, direction friendv1.Direction, page int) {
	ctx, cancel := o.callContext()
	defer cancel()
	resp, err := o.friends.ListPendingRequests(ctx, &friendv1.ListPendingRequestsRequest{
		PlayerID:  issuerID.String(),
		Direction: direction,
	})
	if err != nil {
		o.reportTransient("friends.list_requests", issuerID, uuid.Nil, "list %s requests: %v", direction, err)
		o.send(issuerID, o.format.GenericError())
		return
	}

	requests := resp.Requests
	if len(requests) == 0 {
		o.send(issuerID, o.format.PendingRequests(direction, nil, 1, 0))
		return
	}

	page, pages, start, end := o.paginate(len(requests), page)
	usernames := make([]string, 0, end-start)
	for _, req := range requests[start:end] {
		peerID, err := uuid.Parse(req.PlayerID)
		if err != nil {
			log.Printf("friends: list requests: bad peer id %q: %v", req.PlayerID, err)
			usernames = append(usernames, req.PlayerID)
			continue
		}
		usernames = append(usernames, o.displayName(peerID))
	}
	o.send(issuerID, o.format.PendingRequests(direction, usernames, page, pages))
}

func (o *Orchestrator) runPurge(issuerID uuid.UUID, direction friendv1.Direction) {
	ctx, cancel := o.callContext()
	defer cancel()
	resp, err := o.friends.PurgeFriendRequests(ctx, &friendv1.PurgeFriendRequestsRequest{
		PlayerID:  issuerID.String(),
		Direction: direction,
	})
	if err != nil {
		o.reportTransient("friends.purge_requests", issuerID, uuid.Nil, "purge %s requests: %v", direction, err)
		o.send(issuerID, o.format.GenericError())
		return
	}
	o.send(issuerID, o.format.Purged(direction, resp.Purged))
}

// fetchFriends pulls the issuer's full friend set from the relationship
// service. Rows with malformed peer ids are skipped rather than failing the
// whole listing.
func (o *Orchestrator) fetchFriends(issuerID uuid.UUID) ([]Edge, error) {
	ctx, cancel := o.callContext()
	defer cancel()
	resp, err := o.friends.ListFriends(ctx, &friendv1.ListFriendsRequest{PlayerID: issuerID.String()})
	if err != nil {
		return nil, err
	}
	edges := make([]Edge, 0, len(resp.Friends))
	for _, friend := range resp.Friends {
		peerID, err := uuid.Parse(friend.PlayerID)
		if err != nil {
			log.Printf("friends: list friends: bad peer id %q: %v", friend.PlayerID, err)
			continue
		}
		edges = append(edges, Edge{PeerID: peerID, FriendsSince: friend.FriendsSince})
	}
	return edges, nil
}

// displayName resolves a peer id to its canonical username, falling back to
// the raw id when the lookup fails.
func (o *Orchestrator) displayName(peerID uuid.UUID) string {
	ctx, cancel := o.callContext()
	defer cancel()
	resolved, err := o.resolver.ResolveID(ctx, peerID)
	if err != nil {
		log.Printf("friends: resolve peer %s: %v", peerID, err)
		return peerID.String()
	}
	return resolved.Username
}

// onlineStatuses returns one online flag per requested id. A presence
// failure marks everyone offline; the listing still renders.
func (o *Orchestrator) onlineStatuses(issuerID uuid.UUID, ids []string) []bool {
	online := make([]bool, len(ids))
	if len(ids) == 0 || o.presence == nil {
		return online
	}
	ctx, cancel := o.callContext()
	defer cancel()
	resp, err := o.presence.GetPlayerStatuses(ctx, &presencev1.PlayerStatusesRequest{PlayerIDs: ids})
	if err != nil {
		o.reportTransient("friends.list_friends", issuerID, uuid.Nil, "player statuses: %v", err)
		return online
	}
	byID := make(map[string]bool, len(resp.Statuses))
	for _, st := range resp.Statuses {
		byID[st.PlayerID] = st.Online
	}
	for i, id := range ids {
		online[i] = byID[id]
	}
	return online
}

// paginate clamps the requested 1-based page into range over n items and
// returns the page, the page count, and the slice bounds.
func (o *Orchestrator) paginate(n, page int) (int, int, int, int) {
	pageSize := pagination.ClampPageSize(0, o.pageSize)
	pages := (n + pageSize - 1) / pageSize
	page = pagination.ClampPage(page)
	if page > pages {
		page = pages
	}
	start, end := pagination.Slice(n, page, pageSize)
	return page, pages, start, end
}

func (o *Orchestrator) resolve(targetName string) (identity.Identity, error) {
	ctx, cancel := o.callContext()
	defer cancel()
	return o.resolver.Resolve(ctx, targetName)
}

func (o *Orchestrator) callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeouts.GRPCRequest)
}

// send delivers the chain's single rendered message. A departed session
// drops the text without error.
func (o *Orchestrator) send(issuerID uuid.UUID, text string) {
	_ = o.sessions.Send(issuerID, text)
}

func (o *Orchestrator) reportTransient(source string, issuerID, peerID uuid.UUID, format string, args ...any) {
	log.Printf("friends: "+format, args...)
	_ = o.telemetry.Warnf(context.Background(), source, issuerID.String(), telemetryPeer(peerID), format, args...)
}

func (o *Orchestrator) reportUnknown(source string, issuerID, peerID uuid.UUID) {
	log.Printf("friends: %s returned an unrecognized result code", source)
	_ = o.telemetry.Errorf(context.Background(), source, issuerID.String(), telemetryPeer(peerID), "unrecognized result code")
}

func telemetryPeer(peerID uuid.UUID) string {
	if peerID == uuid.Nil {
		return ""
	}
	return peerID.String()
}
