// Package registry is a reference host for identifier managers: it keys
// vertices and edges the way a graph engine drives its identifier extension
// point, on top of any element DAO.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/viant/graphid/idmanager"
	"github.com/viant/graphid/internal/clock"
	"github.com/viant/graphid/model/graph"
	"github.com/viant/graphid/service/dao"
	"github.com/viant/graphid/service/dao/criteria"
	"github.com/viant/graphid/tracing"
)

// Manager is the identifier extension point used per element kind.
type Manager interface {
	idmanager.Allocator
	idmanager.Normalizer
	Prefix() string
}

// Service registers and resolves graph elements.
type Service struct {
	vertices  Manager
	edges     Manager
	elements  dao.Service[string, graph.Element]
	sessionID string
	// mux serialises writes so that occupancy checks and saves are atomic
	mux sync.Mutex
}

// Option customises the service
type Option func(s *Service)

// WithSessionID tags every span with the owning session
func WithSessionID(id string) Option {
	return func(s *Service) {
		s.sessionID = id
	}
}

// New creates a registry
func New(vertices, edges Manager, elements dao.Service[string, graph.Element], options ...Option) *Service {
	ret := &Service{vertices: vertices, edges: edges, elements: elements}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// AddVertex registers a vertex. A string candidate is used as-is; any other
// candidate, nil included, makes the registry allocate an identifier.
func (s *Service) AddVertex(ctx context.Context, candidate interface{}, label string, properties map[string]interface{}) (vertex *graph.Element, err error) {
	ctx, span := s.startSpan(ctx, "graphid.registry.addVertex", s.vertices)
	defer func() { s.endSpan(span, vertex, err) }()

	s.mux.Lock()
	defer s.mux.Unlock()
	id, err := s.assignID(ctx, s.vertices, candidate)
	if err != nil {
		return nil, err
	}
	vertex = graph.NewVertex(id, label).WithProperties(properties)
	vertex.CreatedAt = clock.Now()
	if err = s.elements.Save(ctx, vertex); err != nil {
		return nil, fmt.Errorf("failed to save vertex %v: %w", id, err)
	}
	return vertex, nil
}

// AddEdge registers an edge between two existing vertices. from and to are
// normalised like any other vertex lookup.
func (s *Service) AddEdge(ctx context.Context, candidate interface{}, label string, from, to interface{}, properties map[string]interface{}) (edge *graph.Element, err error) {
	ctx, span := s.startSpan(ctx, "graphid.registry.addEdge", s.edges)
	defer func() { s.endSpan(span, edge, err) }()

	s.mux.Lock()
	defer s.mux.Unlock()
	source, err := s.lookup(ctx, s.vertices, graph.KindVertex, from)
	if err != nil {
		return nil, fmt.Errorf("invalid edge source: %w", err)
	}
	target, err := s.lookup(ctx, s.vertices, graph.KindVertex, to)
	if err != nil {
		return nil, fmt.Errorf("invalid edge target: %w", err)
	}
	id, err := s.assignID(ctx, s.edges, candidate)
	if err != nil {
		return nil, err
	}
	edge = graph.NewEdge(id, label, source.ID, target.ID).WithProperties(properties)
	edge.CreatedAt = clock.Now()
	if err = s.elements.Save(ctx, edge); err != nil {
		return nil, fmt.Errorf("failed to save edge %v: %w", id, err)
	}
	return edge, nil
}

// Vertex resolves a vertex from a raw identifier value
func (s *Service) Vertex(ctx context.Context, raw interface{}) (vertex *graph.Element, err error) {
	ctx, span := s.startSpan(ctx, "graphid.registry.vertex", s.vertices)
	defer func() { s.endSpan(span, vertex, err) }()
	return s.lookup(ctx, s.vertices, graph.KindVertex, raw)
}

// Edge resolves an edge from a raw identifier value
func (s *Service) Edge(ctx context.Context, raw interface{}) (edge *graph.Element, err error) {
	ctx, span := s.startSpan(ctx, "graphid.registry.edge", s.edges)
	defer func() { s.endSpan(span, edge, err) }()
	return s.lookup(ctx, s.edges, graph.KindEdge, raw)
}

// RemoveVertex deletes a vertex together with its incident edges
func (s *Service) RemoveVertex(ctx context.Context, raw interface{}) (err error) {
	ctx, span := s.startSpan(ctx, "graphid.registry.removeVertex", s.vertices)
	var vertex *graph.Element
	defer func() { s.endSpan(span, vertex, err) }()

	s.mux.Lock()
	defer s.mux.Unlock()
	if vertex, err = s.lookup(ctx, s.vertices, graph.KindVertex, raw); err != nil {
		return err
	}
	edges, err := s.elements.List(ctx, dao.NewParameter(criteria.Kind, string(graph.KindEdge)))
	if err != nil {
		return err
	}
	for _, edge := range edges {
		if !edge.Touches(vertex.ID) {
			continue
		}
		if err = s.elements.Delete(ctx, edge.ID); err != nil && !errors.Is(err, dao.ErrNotFound) {
			return fmt.Errorf("failed to delete edge %v: %w", edge.ID, err)
		}
	}
	return s.elements.Delete(ctx, vertex.ID)
}

// RemoveEdge deletes an edge
func (s *Service) RemoveEdge(ctx context.Context, raw interface{}) (err error) {
	ctx, span := s.startSpan(ctx, "graphid.registry.removeEdge", s.edges)
	var edge *graph.Element
	defer func() { s.endSpan(span, edge, err) }()

	s.mux.Lock()
	defer s.mux.Unlock()
	if edge, err = s.lookup(ctx, s.edges, graph.KindEdge, raw); err != nil {
		return err
	}
	return s.elements.Delete(ctx, edge.ID)
}

// Vertices lists vertices matching parameters
func (s *Service) Vertices(ctx context.Context, parameters ...*dao.Parameter) ([]*graph.Element, error) {
	return s.list(ctx, graph.KindVertex, parameters)
}

// Edges lists edges matching parameters
func (s *Service) Edges(ctx context.Context, parameters ...*dao.Parameter) ([]*graph.Element, error) {
	return s.list(ctx, graph.KindEdge, parameters)
}

func (s *Service) list(ctx context.Context, kind graph.Kind, parameters []*dao.Parameter) ([]*graph.Element, error) {
	parameters = append([]*dao.Parameter{dao.NewParameter(criteria.Kind, string(kind))}, parameters...)
	return s.elements.List(ctx, parameters...)
}

// assignID implements the host side of the identifier contract. Allocated
// identifiers that are already taken (e.g. by elements reloaded from storage
// after a restart) are skipped.
func (s *Service) assignID(ctx context.Context, manager Manager, candidate interface{}) (string, error) {
	if manager.Allow(candidate) {
		id := manager.Normalize(candidate).ID
		if id == "" {
			return "", dao.ErrInvalidID
		}
		taken, err := s.occupied(ctx, id)
		if err != nil {
			return "", err
		}
		if taken {
			return "", fmt.Errorf("element %v: %w", id, dao.ErrDuplicate)
		}
		return id, nil
	}
	for {
		id, err := manager.Next()
		if err != nil {
			return "", err
		}
		taken, err := s.occupied(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
}

func (s *Service) occupied(ctx context.Context, id string) (bool, error) {
	_, err := s.elements.Load(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrNotFound):
		return false, nil
	}
	return false, err
}

func (s *Service) lookup(ctx context.Context, manager Manager, kind graph.Kind, raw interface{}) (*graph.Element, error) {
	id, ok, err := manager.Normalize(raw).Unpack()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%v identifier missing: %w", kind, dao.ErrInvalidID)
	}
	element, err := s.elements.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if element.Kind != kind {
		return nil, fmt.Errorf("%v %v: %w", kind, id, dao.ErrNotFound)
	}
	return element, nil
}

func (s *Service) startSpan(ctx context.Context, name string, manager Manager) (context.Context, *tracing.Span) {
	attrs := map[string]string{"namespace": manager.Prefix()}
	if s.sessionID != "" {
		attrs["session.id"] = s.sessionID
	}
	return tracing.StartSpan(ctx, name, attrs)
}

func (s *Service) endSpan(span *tracing.Span, element *graph.Element, err error) {
	if element != nil {
		span.WithAttribute("element.id", element.ID)
	}
	tracing.EndSpan(span, err)
}
