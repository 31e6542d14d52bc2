package graphid

import (
	"context"
	"fmt"
	"log"

	"github.com/viant/afs"
	"github.com/viant/graphid/idmanager"
	"github.com/viant/graphid/internal/idgen"
	"github.com/viant/graphid/model/graph"
	"github.com/viant/graphid/sequence"
	"github.com/viant/graphid/service/dao"
	efs "github.com/viant/graphid/service/dao/element/fs"
	ememory "github.com/viant/graphid/service/dao/element/memory"
	"github.com/viant/graphid/service/registry"
	"github.com/viant/graphid/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Service wires counters, identifier managers, the element store and the
// registry of a single graph session.
type Service struct {
	config    *Config
	counter   sequence.Counter
	provider  *sequence.Provider
	vertices  *idmanager.Manager
	edges     *idmanager.Manager
	elements  dao.Service[string, graph.Element]
	registry  *registry.Service
	fs        afs.Service
	sessionID string
	tracing   *TracingConfig
	exporter  sdktrace.SpanExporter
}

func (s *Service) init(ctx context.Context, options []Option) error {
	for _, option := range options {
		option(s)
	}
	s.ensureConfig()
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	var err error
	if s.provider, err = sequence.NewProvider(s.config.Counter.Scope, s.counter); err != nil {
		return err
	}
	namespaces := s.config.Namespaces
	s.vertices = idmanager.New(namespaces.Vertex, s.provider.Counter(namespaces.Vertex))
	s.edges = idmanager.New(namespaces.Edge, s.provider.Counter(namespaces.Edge))
	if s.sessionID == "" {
		s.sessionID = idgen.New()
	}
	s.initTracing()
	if err = s.ensureElements(ctx); err != nil {
		return err
	}
	s.registry = registry.New(s.vertices, s.edges, s.elements, registry.WithSessionID(s.sessionID))
	return nil
}

func (s *Service) ensureConfig() {
	defaults := DefaultConfig()
	if s.config == nil {
		s.config = defaults
	} else {
		cloned := *s.config
		s.config = &cloned
	}
	if s.config.Counter.Scope == "" {
		s.config.Counter.Scope = defaults.Counter.Scope
	}
	if s.config.Namespaces.Vertex == "" {
		s.config.Namespaces.Vertex = defaults.Namespaces.Vertex
	}
	if s.config.Namespaces.Edge == "" {
		s.config.Namespaces.Edge = defaults.Namespaces.Edge
	}
	if s.config.Store.Kind == "" {
		s.config.Store.Kind = defaults.Store.Kind
	}
	if s.tracing != nil {
		s.config.Tracing = *s.tracing
	}
	if s.config.Tracing.ServiceName == "" {
		s.config.Tracing.ServiceName = defaults.Tracing.ServiceName
	}
	if s.config.Tracing.ServiceVersion == "" {
		s.config.Tracing.ServiceVersion = defaults.Tracing.ServiceVersion
	}
}

func (s *Service) initTracing() {
	cfg := s.config.Tracing
	var err error
	switch {
	case s.exporter != nil:
		err = tracing.InitWithExporter(cfg.ServiceName, cfg.ServiceVersion, s.exporter)
	case cfg.Enabled:
		err = tracing.Init(cfg.ServiceName, cfg.ServiceVersion, cfg.Output)
	}
	if err != nil {
		log.Printf("graphid: failed to initialise tracing: %v", err)
	}
}

func (s *Service) ensureElements(ctx context.Context) error {
	if s.elements != nil {
		return nil
	}
	switch s.config.Store.Kind {
	case StoreFS:
		if s.fs == nil {
			s.fs = afs.New()
		}
		elements, err := efs.New(ctx, s.config.Store.URL, efs.WithFS(s.fs))
		if err != nil {
			return fmt.Errorf("failed to create fs store: %w", err)
		}
		s.elements = elements
	default:
		s.elements = ememory.New()
	}
	return nil
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

// Vertices returns the vertex identifier manager
func (s *Service) Vertices() *idmanager.Manager {
	return s.vertices
}

// Edges returns the edge identifier manager
func (s *Service) Edges() *idmanager.Manager {
	return s.edges
}

// Manager returns the identifier manager for an element kind
func (s *Service) Manager(kind graph.Kind) (*idmanager.Manager, error) {
	switch kind {
	case graph.KindVertex:
		return s.vertices, nil
	case graph.KindEdge:
		return s.edges, nil
	}
	return nil, fmt.Errorf("unsupported element kind: %q", kind)
}

// Counter returns the counter backing the namespace of kind
func (s *Service) Counter(kind graph.Kind) (sequence.Counter, error) {
	manager, err := s.Manager(kind)
	if err != nil {
		return nil, err
	}
	return manager.Counter(), nil
}

// Registry returns the element registry
func (s *Service) Registry() *registry.Service {
	return s.registry
}

// SessionID returns the session identifier
func (s *Service) SessionID() string {
	return s.sessionID
}

// New creates a service
func New(options ...Option) (*Service, error) {
	return NewWithContext(context.Background(), options...)
}

// NewWithContext creates a service; ctx is used while preparing storage.
func NewWithContext(ctx context.Context, options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(ctx, options); err != nil {
		return nil, err
	}
	return ret, nil
}
