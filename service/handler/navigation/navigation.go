// Package navigation implements the page-navigation command handlers.
package navigation

import (
	"context"

	"github.com/browserhub/browserhub/driver"
	"github.com/browserhub/browserhub/model/command"
	"github.com/browserhub/browserhub/model/types"
	"github.com/browserhub/browserhub/service/dispatch"
	"github.com/browserhub/browserhub/service/session"
)

// Register binds the navigation command constructors to the registry.
func Register(r *dispatch.Registry, store *session.Store) {
	r.Register(command.Get, NewGet(store))
	r.Register(command.GetCurrentURL, NewCurrentURL(store))
	r.Register(command.GetTitle, NewTitle(store))
	r.Register(command.Refresh, newDriverAction(command.Refresh, store, func(ctx context.Context, drv driver.Driver) error {
		return drv.Refresh(ctx)
	}))
	r.Register(command.GoBack, newDriverAction(command.GoBack, store, func(ctx context.Context, drv driver.Driver) error {
		return drv.Back(ctx)
	}))
	r.Register(command.GoForward, newDriverAction(command.GoForward, store, func(ctx context.Context, drv driver.Driver) error {
		return drv.Forward(ctx)
	}))
}

// get navigates the session to a URL taken from the request body.
type get struct {
	sessionID string
	url       string
	store     *session.Store
}

// NewGet returns the get constructor. The url body parameter is required.
func NewGet(store *session.Store) types.Constructor {
	return func(locator types.Locator, payload types.Payload) (types.Handler, error) {
		id, ok := locator.SessionID()
		if !ok {
			return nil, types.NewConstructionError(command.Get, "missing sessionId locator parameter")
		}
		url, ok := payload.String("url")
		if !ok || url == "" {
			return nil, types.NewConstructionError(command.Get, "missing url body parameter")
		}
		return &get{sessionID: id, url: url, store: store}, nil
	}
}

func (h *get) Describe() string { return "get" }

func (h *get) Execute(ctx context.Context) (interface{}, error) {
	sess, ok := h.store.Lookup(h.sessionID)
	if !ok {
		return nil, types.NewSessionNotFoundError(h.sessionID)
	}
	return sess.Perform(ctx, func(ctx context.Context, drv driver.Driver) (interface{}, error) {
		return nil, drv.Navigate(ctx, h.url)
	})
}

// read covers the parameterless string-returning navigation commands.
type read struct {
	id        command.ID
	sessionID string
	store     *session.Store
	invoke    func(ctx context.Context, drv driver.Driver) (string, error)
}

func newRead(id command.ID, store *session.Store, invoke func(ctx context.Context, drv driver.Driver) (string, error)) types.Constructor {
	return func(locator types.Locator, _ types.Payload) (types.Handler, error) {
		sessionID, ok := locator.SessionID()
		if !ok {
			return nil, types.NewConstructionError(id, "missing sessionId locator parameter")
		}
		return &read{id: id, sessionID: sessionID, store: store, invoke: invoke}, nil
	}
}

func (h *read) Describe() string { return h.id.String() }

func (h *read) Execute(ctx context.Context) (interface{}, error) {
	sess, ok := h.store.Lookup(h.sessionID)
	if !ok {
		return nil, types.NewSessionNotFoundError(h.sessionID)
	}
	return sess.Perform(ctx, func(ctx context.Context, drv driver.Driver) (interface{}, error) {
		return h.invoke(ctx, drv)
	})
}

// NewCurrentURL returns the getCurrentUrl constructor.
func NewCurrentURL(store *session.Store) types.Constructor {
	return newRead(command.GetCurrentURL, store, func(ctx context.Context, drv driver.Driver) (string, error) {
		return drv.CurrentURL(ctx)
	})
}

// NewTitle returns the getTitle constructor.
func NewTitle(store *session.Store) types.Constructor {
	return newRead(command.GetTitle, store, func(ctx context.Context, drv driver.Driver) (string, error) {
		return drv.Title(ctx)
	})
}

// driverAction covers the parameterless valueless navigation commands.
type driverAction struct {
	id        command.ID
	sessionID string
	store     *session.Store
	invoke    func(ctx context.Context, drv driver.Driver) error
}

func newDriverAction(id command.ID, store *session.Store, invoke func(ctx context.Context, drv driver.Driver) error) types.Constructor {
	return func(locator types.Locator, _ types.Payload) (types.Handler, error) {
		sessionID, ok := locator.SessionID()
		if !ok {
			return nil, types.NewConstructionError(id, "missing sessionId locator parameter")
		}
		return &driverAction{id: id, sessionID: sessionID, store: store, invoke: invoke}, nil
	}
}

func (h *driverAction) Describe() string { return h.id.String() }

func (h *driverAction) Execute(ctx context.Context) (interface{}, error) {
	sess, ok := h.store.Lookup(h.sessionID)
	if !ok {
		return nil, types.NewSessionNotFoundError(h.sessionID)
	}
	return sess.Perform(ctx, func(ctx context.Context, drv driver.Driver) (interface{}, error) {
		return nil, h.invoke(ctx, drv)
	})
}
