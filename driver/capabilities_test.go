package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesMatch(t *testing.T) {
	tests := []struct {
		name       string
		registered Capabilities
		requested  Capabilities
		expect     bool
	}{
		{
			name:       "exact match",
			registered: Capabilities{"browser": "chrome"},
			requested:  Capabilities{"browser": "chrome"},
			expect:     true,
		},
		{
			name:       "request with extra keys",
			registered: Capabilities{"browser": "chrome"},
			requested:  Capabilities{"browser": "chrome", "headless": true},
			expect:     true,
		},
		{
			name:       "value mismatch",
			registered: Capabilities{"browser": "chrome"},
			requested:  Capabilities{"browser": "firefox"},
			expect:     false,
		},
		{
			name:       "missing key",
			registered: Capabilities{"browser": "chrome", "headless": true},
			requested:  Capabilities{"browser": "chrome"},
			expect:     false,
		},
		{
			name:       "loose numeric comparison",
			registered: Capabilities{"version": 2},
			requested:  Capabilities{"version": "2"},
			expect:     true,
		},
		{
			name:       "empty registration matches anything",
			registered: Capabilities{},
			requested:  Capabilities{"browser": "chrome"},
			expect:     true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.registered.Match(tc.requested))
		})
	}
}

func TestCapabilitiesKey(t *testing.T) {
	caps := Capabilities{"headless": true, "browser": "chrome"}
	assert.Equal(t, "browser=chrome;headless=true", caps.Key())
	assert.Equal(t, "", Capabilities{}.Key())
}

func TestCapabilitiesBrowser(t *testing.T) {
	assert.Equal(t, "chrome", Capabilities{"browser": "chrome"}.Browser())
	assert.Equal(t, "", Capabilities{}.Browser())
}
