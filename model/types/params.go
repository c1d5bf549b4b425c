package types

import (
	"github.com/viant/toolbox"
)

// SessionIDKey is the conventional locator key carrying the session
// identifier in every per-session command.
const SessionIDKey = "sessionId"

// Locator holds parameters extracted from the request path. Keys are unique
// and case-sensitive; insertion order is irrelevant.
type Locator map[string]string

// String returns the value for key and whether it is present.
func (l Locator) String(key string) (string, bool) {
	value, ok := l[key]
	return value, ok
}

// Has reports whether key is present.
func (l Locator) Has(key string) bool {
	_, ok := l[key]
	return ok
}

// SessionID returns the session identifier locator value.
func (l Locator) SessionID() (string, bool) {
	return l.String(SessionIDKey)
}

// Payload holds parameters extracted from the request body. Values are
// arbitrary structured data – numbers, strings, nested maps.
type Payload map[string]interface{}

// Has reports whether key is present.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String coerces the value under key to a string.
func (p Payload) String(key string) (string, bool) {
	value, ok := p[key]
	if !ok || value == nil {
		return "", false
	}
	return toolbox.AsString(value), true
}

// Int coerces the value under key to an int. JSON decoders deliver numbers
// as float64, which toolbox folds back to the integral value.
func (p Payload) Int(key string) (int, bool) {
	value, ok := p[key]
	if !ok || value == nil {
		return 0, false
	}
	return toolbox.AsInt(value), true
}

// Map returns the nested map value under key.
func (p Payload) Map(key string) (map[string]interface{}, bool) {
	value, ok := p[key]
	if !ok {
		return nil, false
	}
	ret, ok := value.(map[string]interface{})
	return ret, ok
}
