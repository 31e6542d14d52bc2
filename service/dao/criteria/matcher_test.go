package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/graphid/model/graph"
	"github.com/viant/graphid/service/dao"
)

func TestMatch(t *testing.T) {
	edge := graph.NewEdge("E1", "parent", "V0", "V2")
	testCases := []struct {
		description string
		parameters  []*dao.Parameter
		expect      bool
	}{
		{description: "no parameters", expect: true},
		{description: "kind match", parameters: []*dao.Parameter{dao.NewParameter(Kind, "edge")}, expect: true},
		{description: "kind mismatch", parameters: []*dao.Parameter{dao.NewParameter(Kind, "vertex")}, expect: false},
		{description: "label in list", parameters: []*dao.Parameter{dao.NewParameter(Label, "spouse", "parent")}, expect: true},
		{description: "label not in list", parameters: []*dao.Parameter{dao.NewParameter(Label, "spouse", "sibling")}, expect: false},
		{description: "all must match", parameters: []*dao.Parameter{dao.NewParameter(From, "V0"), dao.NewParameter(To, "V1")}, expect: false},
		{description: "endpoints", parameters: []*dao.Parameter{dao.NewParameter(From, "V0"), dao.NewParameter(To, "V2")}, expect: true},
		{description: "unknown name ignored", parameters: []*dao.Parameter{dao.NewParameter("State", "done")}, expect: true},
		{description: "nil parameter ignored", parameters: []*dao.Parameter{nil}, expect: true},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Match(edge, testCase.parameters), testCase.description)
	}
}
