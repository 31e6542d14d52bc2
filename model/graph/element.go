package graph

import "time"

// Kind distinguishes vertices from edges.
type Kind string

const (
	KindVertex Kind = "vertex"
	KindEdge   Kind = "edge"
)

type (
	// Element is a vertex or an edge keyed by an allocated or caller supplied
	// identifier. From and To are set for edges only.
	Element struct {
		ID         string                 `json:"id" yaml:"id"`
		Kind       Kind                   `json:"kind" yaml:"kind"`
		Label      string                 `json:"label,omitempty" yaml:"label,omitempty"`
		From       string                 `json:"from,omitempty" yaml:"from,omitempty"`
		To         string                 `json:"to,omitempty" yaml:"to,omitempty"`
		Properties map[string]interface{} `json:"properties,omitempty" yaml:"properties,omitempty"`
		CreatedAt  time.Time              `json:"createdAt" yaml:"createdAt"`
	}
)

// NewVertex creates a vertex element
func NewVertex(id, label string) *Element {
	return &Element{ID: id, Kind: KindVertex, Label: label}
}

// NewEdge creates an edge element connecting from and to
func NewEdge(id, label, from, to string) *Element {
	return &Element{ID: id, Kind: KindEdge, Label: label, From: from, To: to}
}

func (e *Element) IsVertex() bool {
	return e.Kind == KindVertex
}

func (e *Element) IsEdge() bool {
	return e.Kind == KindEdge
}

// Touches returns true when the edge is incident to the vertex id
func (e *Element) Touches(vertexID string) bool {
	return e.IsEdge() && (e.From == vertexID || e.To == vertexID)
}

// WithProperty sets a property on the element
func (e *Element) WithProperty(name string, value interface{}) *Element {
	if e.Properties == nil {
		e.Properties = make(map[string]interface{})
	}
	e.Properties[name] = value
	return e
}

// WithProperties copies all supplied properties onto the element
func (e *Element) WithProperties(properties map[string]interface{}) *Element {
	for k, v := range properties {
		e.WithProperty(k, v)
	}
	return e
}

// Clone creates a copy of the element; property values are copied shallowly
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Properties != nil {
		clone.Properties = make(map[string]interface{}, len(e.Properties))
		for k, v := range e.Properties {
			clone.Properties[k] = v
		}
	}
	return &clone
}
