package driver

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/x"
)

// FailureListener receives a registration-failure notification. Listeners
// are invoked synchronously at the point of failure; no return value is
// expected, and a caller that subscribes nothing observes silent
// non-registration.
type FailureListener func(descriptor, reason string)

// driverType is the capability every backend type must expose.
var driverType = reflect.TypeOf((*Driver)(nil)).Elem()

// Registry binds capability sets to backend factories. Entries are additive
// and a failed registration leaves the registry exactly as it was.
//
// In-process backend types are indexed by their registered name, so a bare
// "TypeName" descriptor resolves regardless of the package the Go type
// lives in.
type Registry struct {
	mux       sync.RWMutex
	entries   []*entry
	types     map[string]*x.Type
	loader    *pluginLoader
	listeners []FailureListener
}

type entry struct {
	capabilities Capabilities
	descriptor   string
	factory      Factory
}

// RegistryOption customises a Registry.
type RegistryOption func(r *Registry)

// WithLibrariesDir overrides the plugin libraries directory. A relative
// directory is resolved beside the server executable.
func WithLibrariesDir(dir string) RegistryOption {
	return func(r *Registry) {
		r.loader.dir = dir
	}
}

// WithFileService overrides the file service used to probe plugin modules.
func WithFileService(fs afs.Service) RegistryOption {
	return func(r *Registry) {
		r.loader.fs = fs
	}
}

// WithFailureListener subscribes a registration-failure listener.
func WithFailureListener(listeners ...FailureListener) RegistryOption {
	return func(r *Registry) {
		r.listeners = append(r.listeners, listeners...)
	}
}

// NewRegistry creates a driver registry.
func NewRegistry(options ...RegistryOption) *Registry {
	ret := &Registry{
		types:  map[string]*x.Type{},
		loader: newPluginLoader(nil, ""),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Subscribe adds a registration-failure listener.
func (r *Registry) Subscribe(listener FailureListener) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.listeners = append(r.listeners, listener)
}

// RegisterType adds compile-time backend types to the in-process type
// index, making them resolvable by bare "TypeName" descriptors without
// any module loading. The type's registered name is the index key; the
// last registration for a name wins.
func (r *Registry) RegisterType(types ...*x.Type) {
	r.mux.Lock()
	defer r.mux.Unlock()
	for _, t := range types {
		if t != nil {
			r.types[t.Name] = t
		}
	}
}

// Register resolves descriptor to a backend factory, validates the backend
// exposes the Driver capability and binds it to the supplied capability set.
// Any failure is reported to the failure listeners and leaves the registry
// unchanged; this method never returns an error to its caller.
func (r *Registry) Register(caps Capabilities, descriptor string) {
	parsed, err := ParseDescriptor(descriptor)
	if err != nil {
		r.fail(descriptor, fmt.Sprintf("invalid descriptor: %v", err))
		return
	}
	factory, reason := r.resolveFactory(context.Background(), parsed)
	if factory == nil {
		r.fail(descriptor, reason)
		return
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	r.entries = append(r.entries, &entry{
		capabilities: caps,
		descriptor:   descriptor,
		factory:      factory,
	})
}

// Resolve returns the factory of the first registration whose capability set
// matches the requested capabilities.
func (r *Registry) Resolve(requested Capabilities) (Factory, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	for _, e := range r.entries {
		if e.capabilities.Match(requested) {
			return e.factory, true
		}
	}
	return nil, false
}

// Registered returns the descriptors of all current registrations, for
// diagnostics.
func (r *Registry) Registered() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.descriptor)
	}
	return out
}

// resolveFactory resolves a parsed descriptor to a backend factory. It
// returns a nil factory and a human-readable reason on failure.
func (r *Registry) resolveFactory(ctx context.Context, d *Descriptor) (Factory, string) {
	// In-process types win over loadable modules.
	r.mux.RLock()
	t, ok := r.types[d.Type]
	r.mux.RUnlock()
	if ok {
		return typeFactory(t)
	}
	if d.Module == "" {
		return nil, fmt.Sprintf("type %q is not registered in process and no module was given", d.Type)
	}
	sym, err := r.loader.lookup(ctx, d.Module, d.Type)
	if err != nil {
		return nil, err.Error()
	}
	factory, ok := symbolFactory(sym)
	if !ok {
		return nil, fmt.Sprintf("symbol %q in module %q is %T, not a driver factory", d.Type, d.Module, sym)
	}
	return factory, ""
}

// typeFactory wraps a registered backend type in a factory that allocates a
// fresh instance per session. The type must implement Driver through its
// pointer (or value) receiver set.
func typeFactory(t *x.Type) (Factory, string) {
	rType := t.Type
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if !reflect.PtrTo(rType).Implements(driverType) && !rType.Implements(driverType) {
		return nil, fmt.Sprintf("type %v does not implement driver.Driver", t.Name)
	}
	return func(_ context.Context, caps Capabilities) (Driver, error) {
		instance := reflect.New(rType).Interface()
		if initer, ok := instance.(Initializer); ok {
			if err := initer.Init(caps); err != nil {
				return nil, err
			}
		}
		drv, ok := instance.(Driver)
		if !ok {
			// Value-receiver implementation.
			drv = reflect.ValueOf(instance).Elem().Interface().(Driver)
		}
		return drv, nil
	}, ""
}

// symbolFactory converts an exported plugin symbol to a Factory. Plugin
// variable lookups yield pointers, so both forms are accepted.
func symbolFactory(sym interface{}) (Factory, bool) {
	switch actual := sym.(type) {
	case Factory:
		return actual, true
	case *Factory:
		return *actual, actual != nil && *actual != nil
	case func(ctx context.Context, caps Capabilities) (Driver, error):
		return actual, true
	case *func(ctx context.Context, caps Capabilities) (Driver, error):
		return *actual, actual != nil && *actual != nil
	}
	return nil, false
}

// fail notifies every listener about a failed registration.
func (r *Registry) fail(descriptor, reason string) {
	r.mux.RLock()
	listeners := make([]FailureListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.mux.RUnlock()
	for _, listener := range listeners {
		listener(descriptor, reason)
	}
}
