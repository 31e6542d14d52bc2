package graphid

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/graphid/idmanager"
	"github.com/viant/graphid/model/graph"
	"github.com/viant/graphid/sequence"
	"github.com/viant/graphid/service/dao/element/memory"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func allocate(t *testing.T, srv *Service, kinds ...graph.Kind) []string {
	var ids []string
	for _, kind := range kinds {
		manager, err := srv.Manager(kind)
		if !assert.NoError(t, err) {
			return nil
		}
		id, err := manager.Next()
		assert.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestNew_CounterScopes(t *testing.T) {
	interleaved := []graph.Kind{graph.KindVertex, graph.KindEdge, graph.KindVertex, graph.KindEdge, graph.KindVertex, graph.KindEdge}
	testCases := []struct {
		description string
		scope       sequence.Scope
		expect      []string
	}{
		{description: "shared counter", scope: sequence.ScopeShared, expect: []string{"V0", "E1", "V2", "E3", "V4", "E5"}},
		{description: "default scope is shared", scope: "", expect: []string{"V0", "E1", "V2", "E3", "V4", "E5"}},
		{description: "namespace counters", scope: sequence.ScopeNamespace, expect: []string{"V0", "E0", "V1", "E1", "V2", "E2"}},
	}
	for _, testCase := range testCases {
		config := DefaultConfig()
		config.Counter.Scope = testCase.scope
		srv, err := New(WithConfig(config))
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, allocate(t, srv, interleaved...), testCase.description)
	}
}

func TestNew_ProcessScope(t *testing.T) {
	config := DefaultConfig()
	config.Counter.Scope = sequence.ScopeProcess
	first, err := New(WithConfig(config))
	assert.NoError(t, err)
	second, err := New(WithConfig(config))
	assert.NoError(t, err)

	counter, err := first.Counter(graph.KindVertex)
	assert.NoError(t, err)
	assert.Same(t, sequence.Process(), counter)
	ids := append(allocate(t, first, graph.KindVertex), allocate(t, second, graph.KindEdge)...)
	assert.NotEqual(t, ids[0][1:], ids[1][1:])
}

func TestNew_InjectedCounter(t *testing.T) {
	counter := sequence.New()
	first, err := New(WithCounter(counter))
	assert.NoError(t, err)
	second, err := New(WithCounter(counter), WithConfig(&Config{Namespaces: NamespacesConfig{Vertex: "P", Edge: "F"}}))
	assert.NoError(t, err)

	ids := append(allocate(t, first, graph.KindVertex, graph.KindEdge), allocate(t, second, graph.KindVertex, graph.KindEdge)...)
	assert.Equal(t, []string{"V0", "E1", "P2", "F3"}, ids)
	assert.EqualValues(t, 4, counter.Peek())
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(WithConfig(&Config{Namespaces: NamespacesConfig{Vertex: "X", Edge: "X"}}))
	assert.Error(t, err)
	_, err = New(WithConfig(&Config{Store: StoreConfig{Kind: StoreFS}}))
	assert.Error(t, err)
}

func TestNew_DoesNotMutateConfig(t *testing.T) {
	config := &Config{}
	srv, err := New(WithConfig(config))
	assert.NoError(t, err)
	assert.Equal(t, &Config{}, config)
	assert.Equal(t, "V", srv.Config().Namespaces.Vertex)
	assert.Equal(t, StoreMemory, srv.Config().Store.Kind)
}

func TestService_Registry(t *testing.T) {
	ctx := context.Background()
	srv, err := New(WithSessionID("session-1"))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "session-1", srv.SessionID())

	v0, err := srv.Registry().AddVertex(ctx, nil, "person", nil)
	assert.NoError(t, err)
	v1, err := srv.Registry().AddVertex(ctx, "ada", "person", nil)
	assert.NoError(t, err)
	edge, err := srv.Registry().AddEdge(ctx, 7, "parent", v0.ID, v1.ID, nil)
	assert.NoError(t, err)

	assert.Equal(t, "V0", v0.ID)
	assert.Equal(t, "ada", v1.ID)
	assert.Equal(t, "E1", edge.ID)
}

func TestService_FSStore(t *testing.T) {
	ctx := context.Background()
	config := DefaultConfig()
	config.Store = StoreConfig{Kind: StoreFS, URL: "mem://localhost/graphid/service"}
	fs := afs.New()
	srv, err := NewWithContext(ctx, WithConfig(config), WithFS(fs))
	if !assert.NoError(t, err) {
		return
	}
	vertex, err := srv.Registry().AddVertex(ctx, nil, "person", nil)
	assert.NoError(t, err)
	exists, err := fs.Exists(ctx, "mem://localhost/graphid/service/"+vertex.ID+".json")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestService_FSStore_CorruptEdge(t *testing.T) {
	ctx := context.Background()
	base := "mem://localhost/graphid/corrupt-edge"
	config := DefaultConfig()
	config.Store = StoreConfig{Kind: StoreFS, URL: base}
	fs := afs.New()
	srv, err := NewWithContext(ctx, WithConfig(config), WithFS(fs))
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, fs.Upload(ctx, base+"/E7.json", file.DefaultFileOsMode, strings.NewReader(`{"id":"E7","kind":"edge","from":true,"to":"V0"}`)))

	_, err = srv.Registry().Edge(ctx, "E7")
	var typeErr *idmanager.InvalidIdentifierTypeError
	if assert.True(t, errors.As(err, &typeErr)) {
		assert.Equal(t, "", typeErr.Namespace)
		assert.Equal(t, "bool", typeErr.Type)
	}
}

func TestService_InjectedDAO(t *testing.T) {
	elements := memory.New()
	srv, err := New(WithElementDAO(elements))
	assert.NoError(t, err)
	_, err = srv.Registry().AddVertex(context.Background(), nil, "person", nil)
	assert.NoError(t, err)
	stored, err := elements.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestService_Manager_UnknownKind(t *testing.T) {
	srv, err := New()
	assert.NoError(t, err)
	_, err = srv.Manager("hyperedge")
	assert.Error(t, err)
	_, err = srv.Counter("hyperedge")
	assert.Error(t, err)
}

func TestService_TracingExporter(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	srv, err := New(WithTracingExporter(exporter))
	if !assert.NoError(t, err) {
		return
	}
	_, err = srv.Registry().AddVertex(context.Background(), nil, "person", nil)
	assert.NoError(t, err)
	spans := exporter.GetSpans()
	if assert.NotEmpty(t, spans) {
		assert.Equal(t, "graphid.registry.addVertex", spans[len(spans)-1].Name)
	}
}
