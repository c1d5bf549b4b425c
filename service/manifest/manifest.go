// Package manifest loads driver-registration manifests. A manifest is a
// YAML document listing capability sets and the driver type descriptor each
// one binds to, so operators can declare pluggable backends without code:
//
//	drivers:
//	  - capabilities: {browser: chrome}
//	    type: ChromeDriver, chromedriver
//	  - capabilities: {browser: test}
//	    type: FakeDriver
package manifest

import (
	"context"
	"fmt"
	"strings"

	"github.com/browserhub/browserhub/driver"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Entry binds one capability set to a driver type descriptor.
type Entry struct {
	Capabilities driver.Capabilities `yaml:"capabilities" json:"capabilities"`
	Type         string              `yaml:"type" json:"type"`
}

// Manifest is a parsed driver-registration document.
type Manifest struct {
	Drivers []Entry `yaml:"drivers" json:"drivers"`
}

// Service loads manifests from a base location through the abstract file
// system, so documents can come from disk, embedded assets or remote
// storage alike.
type Service struct {
	fs        afs.Service
	baseURL   string
	fsOptions []storage.Option
}

// New creates a manifest service rooted at baseURL.
func New(fs afs.Service, baseURL string, options ...storage.Option) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, baseURL: baseURL, fsOptions: options}
}

// Load downloads and parses the manifest at location. A relative location
// is resolved against the service base URL.
func (s *Service) Load(ctx context.Context, location string) (*Manifest, error) {
	URL := location
	if s.baseURL != "" && !strings.Contains(location, "://") && !strings.HasPrefix(location, "/") {
		URL = url.Join(s.baseURL, location)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver manifest %v: %w", URL, err)
	}
	manifest := &Manifest{}
	if err = yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("failed to parse driver manifest %v: %w", URL, err)
	}
	return manifest, nil
}

// Apply registers every manifest entry with the driver registry and returns
// the number of entries submitted. Individual registration failures do not
// stop the remaining entries – they surface through the registry's failure
// listeners, entry by entry.
func (s *Service) Apply(m *Manifest, registry *driver.Registry) int {
	if m == nil {
		return 0
	}
	for _, entry := range m.Drivers {
		registry.Register(entry.Capabilities, entry.Type)
	}
	return len(m.Drivers)
}
