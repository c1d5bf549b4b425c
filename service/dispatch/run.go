package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/browserhub/browserhub/model/command"
	"github.com/browserhub/browserhub/model/types"
	"github.com/browserhub/browserhub/policy"
	"github.com/browserhub/browserhub/stats"
	"github.com/browserhub/browserhub/tracing"
)

// ErrDeniedByPolicy marks commands rejected by a context policy before any
// session interaction occurred.
var ErrDeniedByPolicy = errors.New("denied by policy")

// Run executes a handler once, end to end. It applies the optional context
// policy, wraps the execution in a tracing span, and updates the context
// stats tracker. Handler errors – including driver-raised ones – are
// returned unmodified; the span records where they originated.
func Run(ctx context.Context, id command.ID, handler types.Handler) (interface{}, error) {
	if p := policy.FromContext(ctx); !p.Approves(ctx, id, nil) {
		return nil, fmt.Errorf("command %q: %w", id, ErrDeniedByPolicy)
	}

	ctx, span := tracing.StartSpan(ctx, handler.Describe(), "SERVER")
	span.WithAttributes(map[string]string{"command": id.String()})
	result, err := handler.Execute(ctx)
	tracing.EndSpan(span, err)

	if tracker, ok := stats.FromContext(ctx); ok {
		delta := stats.Delta{Executed: 1}
		if err != nil {
			delta.Failed = 1
			if types.IsUnsupportedCommand(err) {
				delta.Unsupported = 1
			}
		}
		tracker.Update(delta)
	}
	return result, err
}
