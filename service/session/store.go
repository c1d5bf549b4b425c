package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/browserhub/browserhub/driver"
	"github.com/browserhub/browserhub/internal/idgen"
	"github.com/browserhub/browserhub/model/types"
)

// Store is the process-wide registry of active sessions, keyed by their
// opaque identifiers. Exactly one instance exists per running server; it is
// constructed explicitly at startup and injected into every component that
// needs it.
type Store struct {
	drivers  *driver.Registry
	mux      sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates a session store allocating drivers through the supplied
// registry.
func NewStore(drivers *driver.Registry) *Store {
	return &Store{
		drivers:  drivers,
		sessions: map[string]*Session{},
	}
}

// Create allocates a driver matching the requested capabilities, wraps it in
// a new session and returns the fresh session identifier. On failure the
// store is left unchanged and a *types.SessionCreationError is returned.
func (s *Store) Create(ctx context.Context, caps driver.Capabilities) (string, error) {
	factory, ok := s.drivers.Resolve(caps)
	if !ok {
		return "", types.NewSessionCreationError(
			fmt.Sprintf("no driver registered for capabilities {%v}", caps.Key()), nil)
	}
	drv, err := factory(ctx, caps)
	if err != nil {
		return "", types.NewSessionCreationError("driver instantiation failed", err)
	}
	id := idgen.New()

	s.mux.Lock()
	defer s.mux.Unlock()
	s.sessions[id] = &Session{id: id, capabilities: caps, driver: drv}
	return id, nil
}

// Lookup returns the session for id, or false when the id is unknown.
// Absence is not an error.
func (s *Store) Lookup(id string) (*Session, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Remove deletes the session for id. Removing an unknown id is a no-op so
// the call is idempotent. The caller is responsible for closing the driver
// before removal – after Remove returns no other entity may hold the
// session.
func (s *Store) Remove(id string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	delete(s.sessions, id)
}

// IDs returns a snapshot of the active session identifiers. Order is
// unspecified.
func (s *Store) IDs() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	out := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		out = append(out, id)
	}
	return out
}

// Len returns the number of active sessions.
func (s *Store) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.sessions)
}
