// Package session tracks players connected to this proxy and delivers
// chat-visible text to them.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Sink consumes rendered text for one connected player.
type Sink func(text string)

type entry struct {
	username string
	sink     Sink
}

// Registry is the process-wide set of connected player sessions. Delivery to
// a departed session is a checked no-op, never an error: command chains may
// outlive the session that issued them.
type Registry struct {
	mu         sync.RWMutex
	sessions   map[uuid.UUID]entry
	leaveHooks []func(uuid.UUID)
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]entry)}
}

// OnLeave registers a hook invoked after a session is removed. Hooks are
// meant for wiring-time registration, before sessions join.
func (r *Registry) OnLeave(hook func(uuid.UUID)) {
	if r == nil || hook == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveHooks = append(r.leaveHooks, hook)
}

// Join registers a connected player, replacing any previous session for the
// same id.
func (r *Registry) Join(id uuid.UUID, username string, sink Sink) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = entry{username: username, sink: sink}
}

// Leave removes a session and runs the registered leave hooks.
func (r *Registry) Leave(id uuid.UUID) {
	if r == nil {
		return
	}
	r.mu.Lock()
	_, present := r.sessions[id]
	delete(r.sessions, id)
	hooks := r.leaveHooks
	r.mu.Unlock()

	if !present {
		return
	}
	for _, hook := range hooks {
		hook(id)
	}
}

// Send delivers text to the session if it is still connected. It reports
// whether delivery happened; false means the session departed and the text
// was dropped.
func (r *Registry) Send(id uuid.UUID, text string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok || session.sink == nil {
		return false
	}
	session.sink(text)
	return true
}

// Username reports the connected player's username.
func (r *Registry) Username(id uuid.UUID) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return "", false
	}
	return session.username, true
}
