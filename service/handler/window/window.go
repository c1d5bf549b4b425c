// Package window implements the window-enumeration command handlers.
package window

import (
	"context"

	"github.com/browserhub/browserhub/driver"
	"github.com/browserhub/browserhub/model/command"
	"github.com/browserhub/browserhub/model/types"
	"github.com/browserhub/browserhub/service/dispatch"
	"github.com/browserhub/browserhub/service/session"
)

// Register binds the window command constructors to the registry.
func Register(r *dispatch.Registry, store *session.Store) {
	r.Register(command.GetWindowHandles, NewHandles(store))
	r.Register(command.GetWindowHandle, NewHandle(store))
	r.Register(command.Close, NewClose(store))
}

// handles returns the full ordered collection of window-handle identifiers
// for the session's driver.
type handles struct {
	sessionID string
	store     *session.Store
}

// NewHandles returns the getWindowHandles constructor.
func NewHandles(store *session.Store) types.Constructor {
	return func(locator types.Locator, _ types.Payload) (types.Handler, error) {
		id, ok := locator.SessionID()
		if !ok {
			return nil, types.NewConstructionError(command.GetWindowHandles, "missing sessionId locator parameter")
		}
		return &handles{sessionID: id, store: store}, nil
	}
}

func (h *handles) Describe() string { return "getWindowHandles" }

func (h *handles) Execute(ctx context.Context) (interface{}, error) {
	sess, ok := h.store.Lookup(h.sessionID)
	if !ok {
		return nil, types.NewSessionNotFoundError(h.sessionID)
	}
	return sess.Perform(ctx, func(ctx context.Context, drv driver.Driver) (interface{}, error) {
		out, err := drv.WindowHandles(ctx)
		if err != nil {
			return nil, err
		}
		// Fixed sequence type regardless of how the backend stores handles.
		return append([]string(nil), out...), nil
	})
}

// handle returns the identifier of the focused window.
type handle struct {
	sessionID string
	store     *session.Store
}

// NewHandle returns the getWindowHandle constructor.
func NewHandle(store *session.Store) types.Constructor {
	return func(locator types.Locator, _ types.Payload) (types.Handler, error) {
		id, ok := locator.SessionID()
		if !ok {
			return nil, types.NewConstructionError(command.GetWindowHandle, "missing sessionId locator parameter")
		}
		return &handle{sessionID: id, store: store}, nil
	}
}

func (h *handle) Describe() string { return "getWindowHandle" }

func (h *handle) Execute(ctx context.Context) (interface{}, error) {
	sess, ok := h.store.Lookup(h.sessionID)
	if !ok {
		return nil, types.NewSessionNotFoundError(h.sessionID)
	}
	return sess.Perform(ctx, func(ctx context.Context, drv driver.Driver) (interface{}, error) {
		return drv.CurrentWindowHandle(ctx)
	})
}

// closeWindow closes the session's current window.
type closeWindow struct {
	sessionID string
	store     *session.Store
}

// NewClose returns the close constructor.
func NewClose(store *session.Store) types.Constructor {
	return func(locator types.Locator, _ types.Payload) (types.Handler, error) {
		id, ok := locator.SessionID()
		if !ok {
			return nil, types.NewConstructionError(command.Close, "missing sessionId locator parameter")
		}
		return &closeWindow{sessionID: id, store: store}, nil
	}
}

func (h *closeWindow) Describe() string { return "close" }

func (h *closeWindow) Execute(ctx context.Context) (interface{}, error) {
	sess, ok := h.store.Lookup(h.sessionID)
	if !ok {
		return nil, types.NewSessionNotFoundError(h.sessionID)
	}
	return sess.Perform(ctx, func(ctx context.Context, drv driver.Driver) (interface{}, error) {
		return nil, drv.CloseWindow(ctx)
	})
}
