package criteria

import (
	"github.com/viant/graphid/model/graph"
	"github.com/viant/graphid/service/dao"
)

// Parameter names understood by Match.
const (
	Kind  = "Kind"
	Label = "Label"
	From  = "From"
	To    = "To"
)

// Match returns true when the element satisfies every parameter. Unknown
// parameter names are ignored.
func Match(element *graph.Element, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil {
			continue
		}
		var actual string
		switch parameter.Name {
		case Kind:
			actual = string(element.Kind)
		case Label:
			actual = element.Label
		case From:
			actual = element.From
		case To:
			actual = element.To
		default:
			continue
		}
		if !matchValue(actual, parameter.Value) {
			return false
		}
	}
	return true
}

func matchValue(actual string, expected interface{}) bool {
	switch values := expected.(type) {
	case string:
		return actual == values
	case []string:
		for _, v := range values {
			if actual == v {
				return true
			}
		}
		return false
	}
	return true
}
