package types

import "context"

// Handler executes exactly one protocol command against exactly one resolved
// session. Instances are built per request, used once, synchronously, and
// discarded – they must not retain state that outlives the request.
type Handler interface {
	// Execute runs the command and returns its result value. Errors raised
	// by the session driver propagate unmodified.
	Execute(ctx context.Context) (interface{}, error)

	// Describe returns a short stable label for diagnostics. It is never
	// used in control flow.
	Describe() string
}

// Constructor builds a handler from the two request parameter sets. A
// constructor reads its required values eagerly and fails with a
// *ConstructionError when one is absent or malformed, so a malformed request
// never yields a partially initialised handler.
type Constructor func(locator Locator, payload Payload) (Handler, error)
