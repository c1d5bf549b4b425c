package browserhub

import (
	"github.com/browserhub/browserhub/driver"
	"github.com/browserhub/browserhub/policy"
	"github.com/browserhub/browserhub/service/dispatch"
	"github.com/browserhub/browserhub/service/session"
	"github.com/browserhub/browserhub/stats"
	"github.com/browserhub/browserhub/tracing"
	"github.com/charmbracelet/log"
	"github.com/viant/afs/storage"
	"github.com/viant/x"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises a Service.
type Option func(s *Service)

// WithConfig sets the configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithDriverRegistry sets the driver registry.
func WithDriverRegistry(registry *driver.Registry) Option {
	return func(s *Service) {
		s.drivers = registry
	}
}

// WithSessionStore sets the session store.
func WithSessionStore(store *session.Store) Option {
	return func(s *Service) {
		s.sessions = store
	}
}

// WithCommandRegistry sets the command registry. Built-in handler sets are
// still registered on top during setup.
func WithCommandRegistry(registry *dispatch.Registry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithDriverTypes adds compile-time backend types.
func WithDriverTypes(types ...*x.Type) Option {
	return func(s *Service) {
		s.driverTypes = append(s.driverTypes, types...)
	}
}

// WithFailureListener subscribes registration-failure listeners.
func WithFailureListener(listeners ...driver.FailureListener) Option {
	return func(s *Service) {
		s.failureListeners = append(s.failureListeners, listeners...)
	}
}

// WithPolicy sets the command execution policy applied when the request
// context carries none.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithStatsTracker sets the dispatch counters tracker.
func WithStatsTracker(tracker *stats.Tracker) Option {
	return func(s *Service) {
		s.tracker = tracker
	}
}

// WithManifestBaseURL sets the base URL driver manifests resolve against.
func WithManifestBaseURL(URL string) Option {
	return func(s *Service) {
		s.manifestBaseURL = URL
	}
}

// WithManifestFsOptions sets file system options used when loading driver
// manifests (e.g. an embedded file system).
func WithManifestFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.manifestFsOptions = append(s.manifestFsOptions, options...)
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The function is
// safe to call multiple times – the first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter. This enables
// integrations with exporters other than the built-in stdout exporter, for example OTLP, Jaeger or
// Zipkin. The function is safe to call multiple times – the first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
