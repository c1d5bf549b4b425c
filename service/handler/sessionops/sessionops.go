// Package sessionops implements the session-lifecycle command handlers:
// creation, teardown, listing and the server status probe.
package sessionops

import (
	"context"

	"github.com/browserhub/browserhub/driver"
	"github.com/browserhub/browserhub/model/command"
	"github.com/browserhub/browserhub/model/types"
	"github.com/browserhub/browserhub/service/dispatch"
	"github.com/browserhub/browserhub/service/session"
	"github.com/browserhub/browserhub/stats"
)

// Register binds the session-lifecycle command constructors to the registry.
func Register(r *dispatch.Registry, store *session.Store) {
	r.Register(command.NewSession, NewCreate(store))
	r.Register(command.Quit, NewQuit(store))
	r.Register(command.GetSessionList, NewList(store))
	r.Register(command.Status, NewStatus(store))
}

// create allocates a new session for the requested capabilities.
type create struct {
	capabilities driver.Capabilities
	store        *session.Store
}

// NewCreate returns the newSession constructor. The desiredCapabilities
// body parameter is required; an empty capability set is legal.
func NewCreate(store *session.Store) types.Constructor {
	return func(_ types.Locator, payload types.Payload) (types.Handler, error) {
		caps, ok := payload.Map("desiredCapabilities")
		if !ok {
			return nil, types.NewConstructionError(command.NewSession, "missing desiredCapabilities body parameter")
		}
		return &create{capabilities: driver.Capabilities(caps), store: store}, nil
	}
}

func (h *create) Describe() string { return "newSession" }

func (h *create) Execute(ctx context.Context) (interface{}, error) {
	id, err := h.store.Create(ctx, h.capabilities)
	if err != nil {
		return nil, err
	}
	if tracker, ok := stats.FromContext(ctx); ok {
		tracker.Update(stats.Delta{SessionsCreated: 1})
	}
	return id, nil
}

// quit tears the session down: the driver is released under the session
// mutex, then the entry leaves the store.
type quit struct {
	sessionID string
	store     *session.Store
}

// NewQuit returns the quit constructor.
func NewQuit(store *session.Store) types.Constructor {
	return func(locator types.Locator, _ types.Payload) (types.Handler, error) {
		id, ok := locator.SessionID()
		if !ok {
			return nil, types.NewConstructionError(command.Quit, "missing sessionId locator parameter")
		}
		return &quit{sessionID: id, store: store}, nil
	}
}

func (h *quit) Describe() string { return "quit" }

func (h *quit) Execute(ctx context.Context) (interface{}, error) {
	sess, ok := h.store.Lookup(h.sessionID)
	if !ok {
		return nil, types.NewSessionNotFoundError(h.sessionID)
	}
	_, err := sess.Perform(ctx, func(ctx context.Context, drv driver.Driver) (interface{}, error) {
		return nil, drv.Close(ctx)
	})
	// The session leaves the store even when the backend failed to shut
	// down cleanly – nothing can be done with it afterwards.
	h.store.Remove(h.sessionID)
	if tracker, ok := stats.FromContext(ctx); ok {
		tracker.Update(stats.Delta{SessionsRemoved: 1})
	}
	return nil, err
}

// list reports the identifiers of all active sessions.
type list struct {
	store *session.Store
}

// NewList returns the getSessionList constructor.
func NewList(store *session.Store) types.Constructor {
	return func(types.Locator, types.Payload) (types.Handler, error) {
		return &list{store: store}, nil
	}
}

func (h *list) Describe() string { return "getSessionList" }

func (h *list) Execute(_ context.Context) (interface{}, error) {
	return h.store.IDs(), nil
}

// Status is the result value of the status command.
type Status struct {
	Ready    bool `json:"ready"`
	Sessions int  `json:"sessions"`
}

// status reports server readiness.
type status struct {
	store *session.Store
}

// NewStatus returns the status constructor.
func NewStatus(store *session.Store) types.Constructor {
	return func(types.Locator, types.Payload) (types.Handler, error) {
		return &status{store: store}, nil
	}
}

func (h *status) Describe() string { return "status" }

func (h *status) Execute(_ context.Context) (interface{}, error) {
	return &Status{Ready: true, Sessions: h.store.Len()}, nil
}
