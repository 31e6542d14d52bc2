package memory

import (
	"github.com/viant/graphid/model/graph"
	"github.com/viant/graphid/service/dao"
	"github.com/viant/graphid/service/dao/criteria"
	"github.com/viant/graphid/service/dao/store"
)

// Service implements an in-memory, thread-safe element store.  All API
// methods work with copies to eliminate data races between goroutines.
type Service struct {
	*store.MemoryStore[string, graph.Element]
}

var _ dao.Service[string, graph.Element] = (*Service)(nil)

func New() *Service {
	return &Service{
		MemoryStore: store.NewMemoryStore[string, graph.Element](
			func(e *graph.Element) string { return e.ID },
			store.WithClone[string, graph.Element]((*graph.Element).Clone),
			store.WithMatcher[string, graph.Element](criteria.Match),
		),
	}
}
