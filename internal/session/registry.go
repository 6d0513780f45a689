package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"smarthire/interview/internal/engine"
	"smarthire/interview/internal/metrics"
)

// Session binds one live interview engine to its public identifier. The
// mutex serializes Start/Respond so the engine's at-most-one-call-in-flight
// contract holds even under concurrent HTTP requests.
type Session struct {
	ID     string
	Engine *engine.ConversationEngine

	mu sync.Mutex
}

// Lock takes the per-session turn lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session turn lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// Registry stores live sessions in memory with a sliding TTL. An interview
// has no terminal state; abandoned sessions simply expire. The registry owns
// the live-sessions gauge so TTL evictions are reflected too, not just
// handler-driven create/delete.
type Registry struct {
	sessions map[string]*registryEntry
	mu       sync.RWMutex
	ttl      time.Duration
}

type registryEntry struct {
	session   *Session
	expiresAt time.Time
}

// NewRegistry creates a session registry with the given idle TTL.
func NewRegistry(ttl time.Duration) *Registry {
	r := &Registry{
		sessions: make(map[string]*registryEntry),
		ttl:      ttl,
	}

	// Start background cleanup goroutine
	go r.cleanupLoop()

	return r
}

// Create registers a new session around the given engine.
func (r *Registry) Create(eng *engine.ConversationEngine) *Session {
	s := &Session{
		ID:     uuid.New().String(),
		Engine: eng,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = &registryEntry{
		session:   s,
		expiresAt: time.Now().Add(r.ttl),
	}
	metrics.SetLiveSessions(len(r.sessions))
	return s
}

// Get retrieves a session if it exists and hasn't expired, sliding its TTL.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.sessions[id]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(r.sessions, id)
		metrics.SetLiveSessions(len(r.sessions))
		return nil, false
	}

	entry.expiresAt = time.Now().Add(r.ttl)
	return entry.session, true
}

// Delete removes a session from the registry.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	metrics.SetLiveSessions(len(r.sessions))
}

// cleanupLoop runs periodically to remove expired entries
func (r *Registry) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		r.cleanup()
	}
}

func (r *Registry) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, entry := range r.sessions {
		if now.After(entry.expiresAt) {
			delete(r.sessions, id)
		}
	}
	metrics.SetLiveSessions(len(r.sessions))
}

// Size returns the current number of live sessions.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
