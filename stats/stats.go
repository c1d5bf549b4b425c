// Package stats provides a lightweight tracker that keeps aggregated
// dispatch counters (handlers executed, failures, sessions created, …) for a
// running server.  The tracker instance lives in the request context – every
// component that receives the context can atomically update the counters via
// the Delta helper without requiring a global registry.

package stats

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the dispatch
// layer or the session store.  The fields are signed and therefore can be
// either positive (increment) or negative (decrement).
type Delta struct {
	Executed        int
	Failed          int
	Unsupported     int
	SessionsCreated int
	SessionsRemoved int
}

// Snapshot is a point-in-time copy of a tracker's counters, suitable for
// read-only inspection and serialisation.
type Snapshot struct {
	ServerID  string    `json:"serverId,omitempty"`
	StartedAt time.Time `json:"startedAt,omitempty"`

	Executed        int `json:"executed"`
	Failed          int `json:"failed"`
	Unsupported     int `json:"unsupported"`
	SessionsCreated int `json:"sessionsCreated"`
	SessionsRemoved int `json:"sessionsRemoved"`
}

// Tracker keeps aggregated counters for one server.  It is safe for
// concurrent use.
type Tracker struct {
	// Identification – informative only, filled when the server starts.
	ServerID  string
	StartedAt time.Time

	mux      sync.Mutex
	counters Delta
	onChange func(Snapshot)
}

// Update applies the supplied delta to the tracker.  It is safe to call from
// multiple goroutines.  If an onChange callback has been registered it will
// be invoked with a snapshot of the updated counters outside the critical
// section so that the callback can perform slow operations (e.g. JSON
// encoding, I/O) without blocking dispatch internals.
func (t *Tracker) Update(d Delta) {
	if t == nil {
		return
	}

	t.mux.Lock()

	t.counters.Executed += d.Executed
	t.counters.Failed += d.Failed
	t.counters.Unsupported += d.Unsupported
	t.counters.SessionsCreated += d.SessionsCreated
	t.counters.SessionsRemoved += d.SessionsRemoved

	// Snapshot while holding the lock to avoid seeing partially updated
	// counters.
	snapshot := t.snapshot()
	cb := t.onChange

	t.mux.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker counters.
func (t *Tracker) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{}
	}
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.snapshot()
}

// snapshot assumes the caller holds the lock.
func (t *Tracker) snapshot() Snapshot {
	return Snapshot{
		ServerID:        t.ServerID,
		StartedAt:       t.StartedAt,
		Executed:        t.counters.Executed,
		Failed:          t.counters.Failed,
		Unsupported:     t.counters.Unsupported,
		SessionsCreated: t.counters.SessionsCreated,
		SessionsRemoved: t.counters.SessionsRemoved,
	}
}

// OnChange registers a callback that is invoked after every Update.  Passing
// nil disables the callback.  Only one callback can be active; subsequent
// calls overwrite the previous value.
func (t *Tracker) OnChange(cb func(Snapshot)) {
	if t == nil {
		return
	}
	t.mux.Lock()
	t.onChange = cb
	t.mux.Unlock()
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Tracker, embeds it in a derived context and
// returns both.  The caller may optionally pass an onChange callback that
// will be invoked after every counter update.
func WithNewTracker(ctx context.Context, serverID string, onChange func(Snapshot)) (context.Context, *Tracker) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Tracker{
		ServerID:  serverID,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// WithTracker embeds an existing tracker in ctx.
func WithTracker(ctx context.Context, tr *Tracker) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, trackerKey, tr)
}

// FromContext extracts the Tracker from ctx.  It returns (tracker, ok).  The
// second return value is false when the context carries no tracker.
func FromContext(ctx context.Context) (*Tracker, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Tracker)
	return tr, ok
}
