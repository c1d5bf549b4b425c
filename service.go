package browserhub

import (
	"context"

	"github.com/browserhub/browserhub/driver"
	"github.com/browserhub/browserhub/internal/clock"
	"github.com/browserhub/browserhub/internal/idgen"
	"github.com/browserhub/browserhub/model/command"
	"github.com/browserhub/browserhub/model/types"
	"github.com/browserhub/browserhub/policy"
	"github.com/browserhub/browserhub/service/dispatch"
	"github.com/browserhub/browserhub/service/handler/mouse"
	"github.com/browserhub/browserhub/service/handler/navigation"
	"github.com/browserhub/browserhub/service/handler/sessionops"
	"github.com/browserhub/browserhub/service/handler/window"
	"github.com/browserhub/browserhub/service/manifest"
	"github.com/browserhub/browserhub/service/session"
	"github.com/browserhub/browserhub/stats"
	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/x"
)

// Service is the process-wide context object of the dispatch core. It wires
// the driver registry, the session store and the command registry together,
// and is constructed once at startup and passed by injection to whatever
// transport serves requests.
type Service struct {
	config            *Config
	logger            *log.Logger
	drivers           *driver.Registry
	sessions          *session.Store
	registry          *dispatch.Registry
	manifests         *manifest.Service
	failureLog        *driver.FailureLog
	tracker           *stats.Tracker
	policy            *policy.Policy
	driverTypes       []*x.Type
	failureListeners  []driver.FailureListener
	manifestBaseURL   string
	manifestFsOptions []storage.Option
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.drivers.RegisterType(s.driverTypes...)
	if s.config.Policy != nil && s.policy == nil {
		s.policy = policy.FromConfig(s.config.Policy)
	}

	sessionops.Register(s.registry, s.sessions)
	window.Register(s.registry, s.sessions)
	mouse.Register(s.registry, s.sessions)
	navigation.Register(s.registry, s.sessions)

	if location := s.config.Drivers.Manifest; location != "" {
		if _, err := s.LoadManifest(context.Background(), location); err != nil {
			// A broken manifest must not halt the server; individual entry
			// failures already flow through the failure listeners.
			s.logger.Warn("driver manifest not applied", "location", location, "error", err)
		}
	}
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.failureLog == nil {
		s.failureLog = driver.NewFailureLog(s.config.Failures.Limit)
	}
	if s.drivers == nil {
		listeners := append([]driver.FailureListener{
			driver.LogFailures(s.logger),
			s.failureLog.Listener(),
		}, s.failureListeners...)
		s.drivers = driver.NewRegistry(
			driver.WithLibrariesDir(s.config.Drivers.Dir),
			driver.WithFailureListener(listeners...))
	} else {
		s.drivers.Subscribe(s.failureLog.Listener())
		for _, listener := range s.failureListeners {
			s.drivers.Subscribe(listener)
		}
	}
	if s.sessions == nil {
		s.sessions = session.NewStore(s.drivers)
	}
	if s.registry == nil {
		s.registry = dispatch.New()
	}
	if s.manifests == nil {
		s.manifests = manifest.New(afs.New(), s.manifestBaseURL, s.manifestFsOptions...)
	}
	if s.tracker == nil {
		s.tracker = &stats.Tracker{ServerID: idgen.New(), StartedAt: clock.Now()}
	}
}

// CreateHandler resolves id and constructs a handler bound to the two
// parameter maps. Dispatch always yields a handler – unknown ids resolve to
// the fallback that fails with UnsupportedCommand once executed. Only
// constructor failures (missing/malformed required parameters) are returned.
func (s *Service) CreateHandler(id command.ID, locator types.Locator, payload types.Payload) (types.Handler, error) {
	return s.registry.Create(id, locator, payload)
}

// CanCreateHandler reports whether a constructor is registered for id.
func (s *Service) CanCreateHandler(id command.ID) bool {
	return s.registry.CanCreate(id)
}

// Execute constructs and runs the handler for one request, end to end. The
// service policy (when configured) and the stats tracker are attached to the
// context unless the caller supplied their own.
func (s *Service) Execute(ctx context.Context, id command.ID, locator types.Locator, payload types.Payload) (interface{}, error) {
	if _, ok := stats.FromContext(ctx); !ok {
		ctx = stats.WithTracker(ctx, s.tracker)
	}
	if s.policy != nil && policy.FromContext(ctx) == nil {
		ctx = policy.WithPolicy(ctx, s.policy)
	}
	handler, err := s.registry.Create(id, locator, payload)
	if err != nil {
		return nil, err
	}
	return dispatch.Run(ctx, id, handler)
}

// RegisterDriver binds a capability set to a backend type descriptor.
// Failures surface through the failure listeners, never here.
func (s *Service) RegisterDriver(caps driver.Capabilities, descriptor string) {
	s.drivers.Register(caps, descriptor)
}

// RegisterDriverTypes adds compile-time backend types to the driver
// registry.
func (s *Service) RegisterDriverTypes(types ...*x.Type) {
	s.drivers.RegisterType(types...)
}

// LoadManifest loads the driver manifest at location and registers every
// entry, returning the number of entries submitted.
func (s *Service) LoadManifest(ctx context.Context, location string) (int, error) {
	m, err := s.manifests.Load(ctx, location)
	if err != nil {
		return 0, err
	}
	return s.manifests.Apply(m, s.drivers), nil
}

// Sessions returns the session store.
func (s *Service) Sessions() *session.Store { return s.sessions }

// Drivers returns the driver registry.
func (s *Service) Drivers() *driver.Registry { return s.drivers }

// Registry returns the command registry.
func (s *Service) Registry() *dispatch.Registry { return s.registry }

// Failures returns the retained registration failures, oldest first.
func (s *Service) Failures() []driver.Failure { return s.failureLog.Failures() }

// Stats returns a snapshot of the dispatch counters.
func (s *Service) Stats() stats.Snapshot { return s.tracker.Snapshot() }

// New creates a dispatch-core service.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
