// Package policy provides a simple, optional per-command gate that can be
// attached to a dispatch call via context.  It is deliberately decoupled
// from the rest of the core so that using it is entirely opt-in – servers
// that do not embed a Policy in their context keep the original "auto"
// behaviour.

package policy

import (
	"context"
	"strings"

	"github.com/browserhub/browserhub/model/command"
)

// Execution modes recognised by the dispatch layer.
const (
	ModeAsk  = "ask"  // ask before every command
	ModeAuto = "auto" // execute automatically (default)
	ModeDeny = "deny" // block execution
)

// AskFunc is invoked when Mode==ask.  Returning true approves the command,
// false rejects it.  Implementations MAY mutate the policy (for example,
// switching to ModeAuto after the first approval).
type AskFunc func(
	ctx context.Context,
	id command.ID,
	payload map[string]interface{}, // body parameters – may be nil
	p *Policy,
) bool

// Policy represents the execution constraints for commands dispatched on a
// server.
//
//   - Mode controls the high-level behaviour (ask / auto / deny).
//   - AllowList, BlockList allow coarse filtering regardless of Mode.
//   - Ask is only used when Mode==ask.
//
// A nil *Policy means "execute everything" and is therefore the zero-cost
// default.
type Policy struct {
	Mode      string     // ask / auto / deny      (default = auto)
	AllowList []string   // whitelist (empty => all)
	BlockList []string   // blacklist
	Ask       AskFunc    // used only when Mode==ask
}

// Config represents the declarative, serialisable part of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Mode:      p.Mode,
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
	}
}

// FromConfig converts a stored Config back to a runtime Policy (without
// AskFunc).
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      c.Mode,
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// IsAllowed evaluates AllowList / BlockList.  Both lists match by exact,
// case-insensitive comparison of the command identifier.
func (p *Policy) IsAllowed(id command.ID) bool {
	if p == nil {
		return true
	}

	normalized := strings.ToLower(id.String())

	// BlockList has priority.
	for _, b := range p.BlockList {
		if normalized == strings.ToLower(b) {
			return false
		}
	}

	// AllowList – if empty everything is allowed, otherwise only the listed
	// entries.
	if len(p.AllowList) == 0 {
		return true
	}

	for _, a := range p.AllowList {
		if normalized == strings.ToLower(a) {
			return true
		}
	}

	return false
}

// Approves runs the full gate for one command: mode first, then the lists,
// then the interactive Ask hook when configured.
func (p *Policy) Approves(ctx context.Context, id command.ID, payload map[string]interface{}) bool {
	if p == nil {
		return true
	}
	if p.Mode == ModeDeny {
		return false
	}
	if !p.IsAllowed(id) {
		return false
	}
	if p.Mode == ModeAsk && p.Ask != nil {
		return p.Ask(ctx, id, payload, p)
	}
	return true
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type ctxKeyT struct{}

var ctxKey ctxKeyT

// WithPolicy embeds policy in ctx.
func WithPolicy(ctx context.Context, p *Policy) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey, p)
}

// FromContext extracts (*Policy, ok).
func FromContext(ctx context.Context) *Policy {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxKey).(*Policy); ok {
		return v
	}
	return nil
}
