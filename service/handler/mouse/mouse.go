// Package mouse implements the pointer-device command handlers. Actions
// apply at the device's last known coordinates, mirroring the wire
// protocol's stateful pointer model.
package mouse

import (
	"context"
	"fmt"

	"github.com/browserhub/browserhub/driver"
	"github.com/browserhub/browserhub/model/command"
	"github.com/browserhub/browserhub/model/types"
	"github.com/browserhub/browserhub/service/dispatch"
	"github.com/browserhub/browserhub/service/session"
	"github.com/viant/structology/conv"
)

// PrimaryButton is the button code denoting the primary device button.
const PrimaryButton = 0

var converter *conv.Converter

func init() {
	options := conv.DefaultOptions()
	options.ClonePointerData = true
	options.IgnoreUnmapped = true
	converter = conv.NewConverter(options)
}

// Register binds the pointer command constructors to the registry.
func Register(r *dispatch.Registry, store *session.Store) {
	r.Register(command.MouseClick, NewClick(store))
	r.Register(command.MouseDoubleClick, NewDoubleClick(store))
	r.Register(command.MouseButtonDown, NewButtonDown(store))
	r.Register(command.MouseButtonUp, NewButtonUp(store))
	r.Register(command.MouseMoveTo, NewMoveTo(store))
}

type clickInput struct {
	Button int `json:"button"`
}

// click dispatches a primary or context click depending on the button code
// captured at construction time.
type click struct {
	sessionID string
	button    int
	store     *session.Store
}

// NewClick returns the mouseClick constructor. The integer button body
// parameter is read eagerly; an absent button defaults to the primary one.
func NewClick(store *session.Store) types.Constructor {
	return func(locator types.Locator, payload types.Payload) (types.Handler, error) {
		id, ok := locator.SessionID()
		if !ok {
			return nil, types.NewConstructionError(command.MouseClick, "missing sessionId locator parameter")
		}
		input := &clickInput{}
		if err := converter.Convert(map[string]interface{}(payload), input); err != nil {
			return nil, types.NewConstructionError(command.MouseClick, fmt.Sprintf("malformed button parameter: %v", err))
		}
		if input.Button < 0 {
			return nil, types.NewConstructionError(command.MouseClick, fmt.Sprintf("invalid button code %v", input.Button))
		}
		return &click{sessionID: id, button: input.Button, store: store}, nil
	}
}

func (h *click) Describe() string { return "mouseClick" }

func (h *click) Execute(ctx context.Context) (interface{}, error) {
	sess, ok := h.store.Lookup(h.sessionID)
	if !ok {
		return nil, types.NewSessionNotFoundError(h.sessionID)
	}
	return sess.Perform(ctx, func(ctx context.Context, drv driver.Driver) (interface{}, error) {
		if h.button == PrimaryButton {
			return nil, drv.Pointer().Click(ctx)
		}
		return nil, drv.Pointer().ContextClick(ctx)
	})
}

// pointerAction covers the parameterless pointer commands.
type pointerAction struct {
	id        command.ID
	sessionID string
	store     *session.Store
	invoke    func(ctx context.Context, p driver.Pointer) error
}

func newPointerAction(id command.ID, store *session.Store, invoke func(ctx context.Context, p driver.Pointer) error) types.Constructor {
	return func(locator types.Locator, _ types.Payload) (types.Handler, error) {
		sessionID, ok := locator.SessionID()
		if !ok {
			return nil, types.NewConstructionError(id, "missing sessionId locator parameter")
		}
		return &pointerAction{id: id, sessionID: sessionID, store: store, invoke: invoke}, nil
	}
}

func (h *pointerAction) Describe() string { return h.id.String() }

func (h *pointerAction) Execute(ctx context.Context) (interface{}, error) {
	sess, ok := h.store.Lookup(h.sessionID)
	if !ok {
		return nil, types.NewSessionNotFoundError(h.sessionID)
	}
	return sess.Perform(ctx, func(ctx context.Context, drv driver.Driver) (interface{}, error) {
		return nil, h.invoke(ctx, drv.Pointer())
	})
}

// NewDoubleClick returns the mouseDoubleClick constructor.
func NewDoubleClick(store *session.Store) types.Constructor {
	return newPointerAction(command.MouseDoubleClick, store, func(ctx context.Context, p driver.Pointer) error {
		return p.DoubleClick(ctx)
	})
}

// NewButtonDown returns the mouseButtonDown constructor.
func NewButtonDown(store *session.Store) types.Constructor {
	return newPointerAction(command.MouseButtonDown, store, func(ctx context.Context, p driver.Pointer) error {
		return p.ButtonDown(ctx)
	})
}

// NewButtonUp returns the mouseButtonUp constructor.
func NewButtonUp(store *session.Store) types.Constructor {
	return newPointerAction(command.MouseButtonUp, store, func(ctx context.Context, p driver.Pointer) error {
		return p.ButtonUp(ctx)
	})
}

type moveToInput struct {
	X int `json:"xoffset"`
	Y int `json:"yoffset"`
}

// moveTo positions the pointer device at absolute viewport coordinates.
type moveTo struct {
	sessionID string
	x, y      int
	store     *session.Store
}

// NewMoveTo returns the mouseMoveTo constructor. Both coordinates are
// required body parameters.
func NewMoveTo(store *session.Store) types.Constructor {
	return func(locator types.Locator, payload types.Payload) (types.Handler, error) {
		id, ok := locator.SessionID()
		if !ok {
			return nil, types.NewConstructionError(command.MouseMoveTo, "missing sessionId locator parameter")
		}
		if !payload.Has("xoffset") || !payload.Has("yoffset") {
			return nil, types.NewConstructionError(command.MouseMoveTo, "missing xoffset/yoffset body parameters")
		}
		input := &moveToInput{}
		if err := converter.Convert(map[string]interface{}(payload), input); err != nil {
			return nil, types.NewConstructionError(command.MouseMoveTo, fmt.Sprintf("malformed coordinates: %v", err))
		}
		return &moveTo{sessionID: id, x: input.X, y: input.Y, store: store}, nil
	}
}

func (h *moveTo) Describe() string { return "mouseMoveTo" }

func (h *moveTo) Execute(ctx context.Context) (interface{}, error) {
	sess, ok := h.store.Lookup(h.sessionID)
	if !ok {
		return nil, types.NewSessionNotFoundError(h.sessionID)
	}
	return sess.Perform(ctx, func(ctx context.Context, drv driver.Driver) (interface{}, error) {
		return nil, drv.Pointer().MoveTo(ctx, h.x, h.y)
	})
}
