package dispatch

import (
	"context"

	"github.com/browserhub/browserhub/model/command"
	"github.com/browserhub/browserhub/model/types"
)

// unsupported is the fallback handler for command ids without a registered
// constructor. Construction always succeeds; execution always fails with an
// UnsupportedCommandError referencing the original id.
type unsupported struct {
	id command.ID
}

func newUnsupported(id command.ID) types.Constructor {
	return func(types.Locator, types.Payload) (types.Handler, error) {
		return &unsupported{id: id}, nil
	}
}

func (h *unsupported) Execute(_ context.Context) (interface{}, error) {
	return nil, types.NewUnsupportedCommandError(h.id)
}

func (h *unsupported) Describe() string {
	return "unsupported command " + h.id.String()
}
