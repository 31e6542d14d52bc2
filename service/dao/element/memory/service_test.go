package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/graphid/model/graph"
	"github.com/viant/graphid/service/dao"
	"github.com/viant/graphid/service/dao/criteria"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	srv := New()

	assert.NoError(t, srv.Save(ctx, graph.NewVertex("V0", "person")))
	assert.NoError(t, srv.Save(ctx, graph.NewVertex("V1", "person")))
	assert.NoError(t, srv.Save(ctx, graph.NewEdge("E2", "parent", "V0", "V1")))

	vertex, err := srv.Load(ctx, "V0")
	assert.NoError(t, err)
	assert.Equal(t, graph.KindVertex, vertex.Kind)

	vertices, err := srv.List(ctx, dao.NewParameter(criteria.Kind, string(graph.KindVertex)))
	assert.NoError(t, err)
	assert.Len(t, vertices, 2)

	edges, err := srv.List(ctx, dao.NewParameter(criteria.From, "V0"))
	assert.NoError(t, err)
	if assert.Len(t, edges, 1) {
		assert.Equal(t, "E2", edges[0].ID)
	}

	assert.NoError(t, srv.Delete(ctx, "E2"))
	_, err = srv.Load(ctx, "E2")
	assert.ErrorIs(t, err, dao.ErrNotFound)
}
