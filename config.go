package browserhub

import (
	"context"
	"fmt"

	"github.com/browserhub/browserhub/driver"
	"github.com/browserhub/browserhub/policy"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the server-core configuration.
// It can be populated from JSON, YAML, environment-driven templating, etc.
// The zero-value is useful – all nested fields inherit their package
// defaults.
type Config struct {
	Drivers  DriversConfig  `json:"drivers" yaml:"drivers"`
	Failures FailuresConfig `json:"failures" yaml:"failures"`
	Policy   *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
}

// DriversConfig controls backend registration.
type DriversConfig struct {
	// Dir is the plugin libraries directory; a relative value resolves
	// beside the server executable.
	Dir string `json:"dir" yaml:"dir"`

	// Manifest optionally names a driver manifest applied at startup.
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty"`
}

// FailuresConfig controls the registration-failure log.
type FailuresConfig struct {
	// Limit caps the number of retained failures; non-positive keeps all.
	Limit int `json:"limit" yaml:"limit"`
}

// DefaultConfig returns a Config populated with the package defaults.
// Callers may modify the returned struct before passing it to New.
func DefaultConfig() *Config {
	return &Config{
		Drivers:  DriversConfig{Dir: driver.DefaultLibrariesDir},
		Failures: FailuresConfig{Limit: 64},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Drivers.Dir == "" {
		return fmt.Errorf("drivers.dir must not be empty")
	}
	return nil
}

// LoadConfig reads a YAML configuration document from URL through the
// abstract file system.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
