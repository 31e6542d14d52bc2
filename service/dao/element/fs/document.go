package fs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/graphid/idmanager"
	"github.com/viant/graphid/model/graph"
)

// document is the stored form of an element. Identifier fields are decoded
// untyped so that whatever was written to storage passes the normalizer
// before it becomes a lookup key again.
type document struct {
	ID         interface{}            `json:"id"`
	Kind       graph.Kind             `json:"kind"`
	Label      string                 `json:"label,omitempty"`
	From       interface{}            `json:"from,omitempty"`
	To         interface{}            `json:"to,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}

func (d *document) element(normalizer idmanager.Normalizer) (*graph.Element, error) {
	id, ok, err := normalizer.Normalize(d.ID).Unpack()
	if err != nil {
		return nil, fmt.Errorf("invalid element id: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("element id missing")
	}
	from, _, err := normalizer.Normalize(d.From).Unpack()
	if err != nil {
		return nil, fmt.Errorf("invalid edge source of %v: %w", id, err)
	}
	to, _, err := normalizer.Normalize(d.To).Unpack()
	if err != nil {
		return nil, fmt.Errorf("invalid edge target of %v: %w", id, err)
	}
	return &graph.Element{
		ID:         id,
		Kind:       d.Kind,
		Label:      d.Label,
		From:       from,
		To:         to,
		Properties: restoreProperties(d.Properties),
		CreatedAt:  d.CreatedAt,
	}, nil
}

// restoreProperties turns decoded json.Number values back into int64 when
// they are whole numbers and float64 otherwise, so large integers keep
// their precision.
func restoreProperties(properties map[string]interface{}) map[string]interface{} {
	if properties == nil {
		return nil
	}
	for name, value := range properties {
		properties[name] = restoreNumber(value)
	}
	return properties
}

func restoreNumber(value interface{}) interface{} {
	switch actual := value.(type) {
	case json.Number:
		if i, err := actual.Int64(); err == nil {
			return i
		}
		if f, err := actual.Float64(); err == nil {
			return f
		}
		return actual.String()
	case map[string]interface{}:
		return restoreProperties(actual)
	case []interface{}:
		for i, item := range actual {
			actual[i] = restoreNumber(item)
		}
		return actual
	}
	return value
}
