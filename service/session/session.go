package session

import (
	"context"
	"sync"

	"github.com/browserhub/browserhub/driver"
)

// Session binds an opaque identifier, the capability set it was created
// with and an exclusively owned driver instance. Sessions are created only
// by the Store and live until explicitly removed.
type Session struct {
	id           string
	capabilities driver.Capabilities
	driver       driver.Driver
	mux          sync.Mutex
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Capabilities returns the capability set the session was created with.
func (s *Session) Capabilities() driver.Capabilities { return s.capabilities }

// Driver returns the owned backend instance. Callers outside the Perform
// critical section must not invoke actions on it.
func (s *Session) Driver() driver.Driver { return s.driver }

// Perform runs one driver interaction under the session mutex. Driver
// instances are not safe for concurrent invocation, so at most one command
// is in flight per session; sessions stay fully independent of each other.
func (s *Session) Perform(ctx context.Context, fn func(ctx context.Context, drv driver.Driver) (interface{}, error)) (interface{}, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return fn(ctx, s.driver)
}
