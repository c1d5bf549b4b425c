package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocator(t *testing.T) {
	locator := Locator{SessionIDKey: "sess-1", "windowHandle": "w-1"}

	id, ok := locator.SessionID()
	assert.True(t, ok)
	assert.Equal(t, "sess-1", id)

	assert.True(t, locator.Has("windowHandle"))
	assert.False(t, locator.Has("elementId"))

	_, ok = Locator{}.SessionID()
	assert.False(t, ok)
}

func TestPayloadString(t *testing.T) {
	payload := Payload{"url": "https://example.com", "count": 3, "empty": nil}

	value, ok := payload.String("url")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com", value)

	// Non-string values coerce to their textual form.
	value, ok = payload.String("count")
	assert.True(t, ok)
	assert.Equal(t, "3", value)

	_, ok = payload.String("empty")
	assert.False(t, ok)
	_, ok = payload.String("absent")
	assert.False(t, ok)
}

func TestPayloadInt(t *testing.T) {
	// JSON decoders deliver numbers as float64.
	payload := Payload{"button": float64(2), "text": "7"}

	value, ok := payload.Int("button")
	assert.True(t, ok)
	assert.Equal(t, 2, value)

	value, ok = payload.Int("text")
	assert.True(t, ok)
	assert.Equal(t, 7, value)

	_, ok = payload.Int("absent")
	assert.False(t, ok)
}

func TestPayloadMap(t *testing.T) {
	payload := Payload{
		"desiredCapabilities": map[string]interface{}{"browser": "chrome"},
		"scalar":              1,
	}

	nested, ok := payload.Map("desiredCapabilities")
	assert.True(t, ok)
	assert.Equal(t, "chrome", nested["browser"])

	_, ok = payload.Map("scalar")
	assert.False(t, ok)
	_, ok = payload.Map("absent")
	assert.False(t, ok)
}
