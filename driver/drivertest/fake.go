// Package drivertest provides an in-memory Driver implementation used by the
// test suites. It records every invoked action so tests can assert on the
// exact sequence a handler produced, without a real browser behind it.
package drivertest

import (
	"context"
	"errors"
	"reflect"

	"github.com/browserhub/browserhub/driver"
	"github.com/viant/x"
)

// TypeName is the descriptor type name the fake registers under.
const TypeName = "FakeDriver"

// Fake is a scriptable in-memory automation backend.
type Fake struct {
	Capabilities driver.Capabilities
	Windows      []string
	Current      string
	URL          string
	PageTitle    string
	History      []string
	Closed       bool

	// Err, when set, fails every driver action with it.
	Err error

	pointer *Pointer
}

var _ driver.Driver = (*Fake)(nil)
var _ driver.Initializer = (*Fake)(nil)

// Init captures the requested capabilities.
func (f *Fake) Init(caps driver.Capabilities) error {
	f.Capabilities = caps
	return nil
}

func (f *Fake) WindowHandles(_ context.Context) ([]string, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Windows, nil
}

func (f *Fake) CurrentWindowHandle(_ context.Context) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Current, nil
}

func (f *Fake) Navigate(_ context.Context, url string) error {
	if f.Err != nil {
		return f.Err
	}
	f.URL = url
	f.History = append(f.History, url)
	return nil
}

func (f *Fake) CurrentURL(_ context.Context) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.URL, nil
}

func (f *Fake) Title(_ context.Context) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.PageTitle, nil
}

func (f *Fake) Refresh(_ context.Context) error { return f.Err }

func (f *Fake) Back(_ context.Context) error { return f.Err }

func (f *Fake) Forward(_ context.Context) error { return f.Err }

// CloseWindow removes the current window from the window list and focuses
// the first remaining one.
func (f *Fake) CloseWindow(_ context.Context) error {
	if f.Err != nil {
		return f.Err
	}
	remaining := f.Windows[:0]
	for _, handle := range f.Windows {
		if handle != f.Current {
			remaining = append(remaining, handle)
		}
	}
	f.Windows = remaining
	f.Current = ""
	if len(remaining) > 0 {
		f.Current = remaining[0]
	}
	return nil
}

func (f *Fake) Pointer() driver.Pointer {
	if f.pointer == nil {
		f.pointer = &Pointer{}
	}
	return f.pointer
}

// Device returns the concrete pointer for assertions.
func (f *Fake) Device() *Pointer {
	f.Pointer()
	return f.pointer
}

func (f *Fake) Close(_ context.Context) error {
	if f.Err != nil {
		return f.Err
	}
	f.Closed = true
	return nil
}

// Pointer records pointer-device actions in invocation order.
type Pointer struct {
	Actions []string
	X, Y    int

	// Err, when set, fails every pointer action with it.
	Err error
}

var _ driver.Pointer = (*Pointer)(nil)

func (p *Pointer) Click(_ context.Context) error        { return p.record("click") }
func (p *Pointer) ContextClick(_ context.Context) error { return p.record("contextClick") }
func (p *Pointer) DoubleClick(_ context.Context) error  { return p.record("doubleClick") }
func (p *Pointer) ButtonDown(_ context.Context) error   { return p.record("buttonDown") }
func (p *Pointer) ButtonUp(_ context.Context) error     { return p.record("buttonUp") }

func (p *Pointer) MoveTo(_ context.Context, x, y int) error {
	if err := p.record("moveTo"); err != nil {
		return err
	}
	p.X, p.Y = x, y
	return nil
}

func (p *Pointer) record(action string) error {
	if p.Err != nil {
		return p.Err
	}
	p.Actions = append(p.Actions, action)
	return nil
}

// Type returns the fake's registrable type entry.
func Type() *x.Type {
	return x.NewType(reflect.TypeOf(Fake{}), x.WithName(TypeName))
}

// Register registers the fake as an in-process backend bound to caps.
func Register(r *driver.Registry, caps driver.Capabilities) {
	r.RegisterType(Type())
	r.Register(caps, TypeName)
}

// Incapable is a registrable type that does not expose the Driver
// capability; registering it must fail.
type Incapable struct{}

// IncapableType returns the registrable entry for Incapable.
func IncapableType() *x.Type {
	return x.NewType(reflect.TypeOf(Incapable{}), x.WithName("Incapable"))
}

// FailingTypeName is the descriptor type name Failing registers under.
const FailingTypeName = "FailingDriver"

// Failing is a backend whose initialisation always fails, for exercising
// session-creation error paths.
type Failing struct {
	Fake
}

var _ driver.Initializer = (*Failing)(nil)

func (f *Failing) Init(_ driver.Capabilities) error {
	return errors.New("backend unavailable")
}

// FailingType returns the registrable entry for Failing.
func FailingType() *x.Type {
	return x.NewType(reflect.TypeOf(Failing{}), x.WithName(FailingTypeName))
}
