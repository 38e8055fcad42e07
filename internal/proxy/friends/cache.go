// Package friends orchestrates the proxy-side friends feature: username
// resolution, relationship RPCs, the local friend cache, and the rendered
// outcome sent back to the issuing session.
package friends

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Edge is one established relationship cached for an owning player. Edges
// are keyed by PeerID within an owner's set; replacing an edge swaps the
// whole value rather than mutating it in place.
type Edge struct {
	PeerID       uuid.UUID
	FriendsSince time.Time
}

type cacheEntry struct {
	edges map[uuid.UUID]Edge
	// populated marks owners whose full set was installed from the
	// relationship service. Individual Add writes do not set it, so a
	// lazy list still fetches the authoritative set.
	populated bool
}

// Cache mirrors confirmed relationships for players connected to this proxy.
// It is written only after the relationship service confirms a mutation or
// returns a full listing; it never originates a relationship change. Entries
// live for the owning player's session.
type Cache struct {
	mu     sync.RWMutex
	owners map[uuid.UUID]*cacheEntry
}

// NewCache creates an empty friend cache.
func NewCache() *Cache {
	return &Cache{owners: make(map[uuid.UUID]*cacheEntry)}
}

// Add inserts or replaces the edge for edge.PeerID under the owner.
func (c *Cache) Add(owner uuid.UUID, edge Edge) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.owners[owner]
	if !ok {
		entry = &cacheEntry{edges: make(map[uuid.UUID]Edge)}
		c.owners[owner] = entry
	}
	entry.edges[edge.PeerID] = edge
}

// Put installs the owner's full edge set from a remote listing, replacing
// any edges cached so far, and marks the owner populated. Installing an
// empty set is valid: it records that the player has no friends.
func (c *Cache) Put(owner uuid.UUID, edges []Edge) {
	if c == nil {
		return
	}
	set := make(map[uuid.UUID]Edge, len(edges))
	for _, edge := range edges {
		set[edge.PeerID] = edge
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.owners[owner] = &cacheEntry{edges: set, populated: true}
}

// Get returns a copy of the owner's cached edges, sorted oldest friendship
// first, and whether the owner's full set has been installed via Put. An
// owner with no entry reports an empty set.
func (c *Cache) Get(owner uuid.UUID) ([]Edge, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	entry, ok := c.owners[owner]
	if !ok {
		c.mu.RUnlock()
		return nil, false
	}
	edges := make([]Edge, 0, len(entry.edges))
	for _, edge := range entry.edges {
		edges = append(edges, edge)
	}
	populated := entry.populated
	c.mu.RUnlock()

	sort.Slice(edges, func(i, j int) bool {
		if !edges[i].FriendsSince.Equal(edges[j].FriendsSince) {
			return edges[i].FriendsSince.Before(edges[j].FriendsSince)
		}
		return edges[i].PeerID.String() < edges[j].PeerID.String()
	})
	return edges, populated
}

// Has reports whether the owner's set contains an edge for the peer.
func (c *Cache) Has(owner, peer uuid.UUID) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.owners[owner]
	if !ok {
		return false
	}
	_, ok = entry.edges[peer]
	return ok
}

// Remove deletes the edge for the peer under the owner, if present.
func (c *Cache) Remove(owner, peer uuid.UUID) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.owners[owner]; ok {
		delete(entry.edges, peer)
	}
}

// Drop discards the owner's whole entry, typically on disconnect.
func (c *Cache) Drop(owner uuid.UUID) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.owners, owner)
}
