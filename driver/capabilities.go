package driver

import (
	"sort"
	"strings"

	"github.com/viant/toolbox"
)

// BrowserCapability is the capability key naming the requested browser.
const BrowserCapability = "browser"

// Capabilities describes the automation features a client requests when
// creating a session. Registrations carry the subset of capabilities they
// satisfy; a registration matches a request when every registered key is
// present in the request with an equal value.
type Capabilities map[string]interface{}

// Browser returns the requested browser name, or "" when unset.
func (c Capabilities) Browser() string {
	value, ok := c[BrowserCapability]
	if !ok || value == nil {
		return ""
	}
	return toolbox.AsString(value)
}

// Match reports whether the requested capabilities satisfy this set. Values
// compare loosely as strings so that JSON-decoded numbers and booleans match
// their textual form.
func (c Capabilities) Match(requested Capabilities) bool {
	for key, want := range c {
		got, ok := requested[key]
		if !ok {
			return false
		}
		if toolbox.AsString(want) != toolbox.AsString(got) {
			return false
		}
	}
	return true
}

// Key renders a canonical representation of the capability set, used for
// diagnostics and registry bookkeeping.
func (c Capabilities) Key() string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(toolbox.AsString(c[key]))
	}
	return b.String()
}
