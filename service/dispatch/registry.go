package dispatch

import (
	"sync"

	"github.com/browserhub/browserhub/model/command"
	"github.com/browserhub/browserhub/model/types"
)

// Registry maps command identifiers to handler constructors. It is populated
// once during server setup and is effectively read-only afterwards; handler
// construction is serialised through a single critical section because
// constructors are not assumed thread-safe in every backend.
type Registry struct {
	mux          sync.Mutex
	constructors map[command.ID]types.Constructor
}

// New creates an empty command registry.
func New() *Registry {
	return &Registry{constructors: map[command.ID]types.Constructor{}}
}

// Register binds a constructor to a command id. It is called during the
// one-time setup step; the last registration for an id wins.
func (r *Registry) Register(id command.ID, constructor types.Constructor) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.constructors[id] = constructor
}

// CanCreate reports whether a constructor is registered for id.
func (r *Registry) CanCreate(id command.ID) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	_, ok := r.constructors[id]
	return ok
}

// Create resolves the constructor for id and invokes it with the two
// parameter maps. When no constructor is registered the fixed
// unsupported-command constructor is used, so dispatch always yields some
// handler; that handler fails with an UnsupportedCommandError carrying id
// only once executed. Constructor failures (missing or malformed required
// parameters) are returned to the caller.
func (r *Registry) Create(id command.ID, locator types.Locator, payload types.Payload) (types.Handler, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	constructor, ok := r.constructors[id]
	if !ok {
		constructor = newUnsupported(id)
	}
	return constructor(locator, payload)
}
