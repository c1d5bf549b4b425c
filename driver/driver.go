package driver

import "context"

// Driver is the automation capability a session owns. Implementations drive
// a live browser (or a similar target) and are treated as opaque by the
// dispatch core: handlers only ever invoke single actions against them.
//
// A Driver is NOT safe for concurrent invocation – the session layer
// serialises commands so at most one action is in flight per instance.
type Driver interface {
	// WindowHandles returns the identifiers of all open windows, in the
	// order the backend reports them.
	WindowHandles(ctx context.Context) ([]string, error)

	// CurrentWindowHandle returns the identifier of the focused window.
	CurrentWindowHandle(ctx context.Context) (string, error)

	// Navigate loads the given URL in the current window.
	Navigate(ctx context.Context, url string) error

	// CurrentURL returns the URL of the current page.
	CurrentURL(ctx context.Context) (string, error)

	// Title returns the title of the current page.
	Title(ctx context.Context) (string, error)

	// Refresh reloads the current page.
	Refresh(ctx context.Context) error

	// Back navigates one step back in the history.
	Back(ctx context.Context) error

	// Forward navigates one step forward in the history.
	Forward(ctx context.Context) error

	// CloseWindow closes the current window. Closing the last window leaves
	// the backend alive; Close releases it.
	CloseWindow(ctx context.Context) error

	// Pointer returns the backend's pointer device.
	Pointer() Pointer

	// Close releases the backend and every resource it holds. After Close
	// returns the instance must not be used again.
	Close(ctx context.Context) error
}

// Pointer models the backend's pointer device. Actions apply at the last
// known device coordinates unless moved first.
type Pointer interface {
	// Click performs a primary-button click.
	Click(ctx context.Context) error

	// ContextClick performs a secondary-button click.
	ContextClick(ctx context.Context) error

	// DoubleClick performs a primary-button double click.
	DoubleClick(ctx context.Context) error

	// ButtonDown presses and holds the primary button.
	ButtonDown(ctx context.Context) error

	// ButtonUp releases the primary button.
	ButtonUp(ctx context.Context) error

	// MoveTo moves the device to absolute viewport coordinates.
	MoveTo(ctx context.Context, x, y int) error
}

// Factory instantiates a backend for one session. Plugin modules export
// their backends as Factory symbols.
type Factory func(ctx context.Context, caps Capabilities) (Driver, error)

// Initializer is implemented by compile-time registered backend types that
// want the requested capabilities at instantiation.
type Initializer interface {
	Init(caps Capabilities) error
}
