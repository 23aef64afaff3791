package collection

import (
	"sync"
	"time"
)

const (
	sessionTTL  = 30 * time.Minute
	maxSessions = 10000
)

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry tracks live browsing sessions by ID. Sessions idle past their TTL
// are evicted lazily on access.
type Registry struct {
	mu       sync.Mutex
	capacity int
	sessions map[string]*entry
}

func NewRegistry() *Registry {
	return NewRegistryWithCapacity(maxSessions)
}

// NewRegistryWithCapacity bounds the number of live sessions.
func NewRegistryWithCapacity(capacity int) *Registry {
	if capacity < 1 {
		capacity = maxSessions
	}
	return &Registry{capacity: capacity, sessions: make(map[string]*entry)}
}

// HasCapacity reports whether another session can be admitted, evicting
// expired ones first. Callers check it before constructing a session so a
// full registry never costs a query.
func (r *Registry) HasCapacity() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()
	return len(r.sessions) < r.capacity
}

// Add registers a session, evicting expired ones first. Returns false when
// the registry is full.
func (r *Registry) Add(s *Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictLocked()
	if len(r.sessions) >= r.capacity {
		return false
	}
	r.sessions[s.ID()] = &entry{session: s, lastSeen: time.Now()}
	return true
}

// Get returns the session with the given ID, refreshing its idle timer.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil
	}
	if time.Since(e.lastSeen) > sessionTTL {
		delete(r.sessions, id)
		return nil
	}
	e.lastSeen = time.Now()
	return e.session
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) evictLocked() {
	now := time.Now()
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > sessionTTL {
			delete(r.sessions, id)
		}
	}
}
