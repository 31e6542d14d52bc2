package sequence

import "fmt"

// Scope controls how counters are shared between identifier namespaces.
type Scope string

const (
	ScopeProcess   Scope = "process"
	ScopeShared    Scope = "shared"
	ScopeNamespace Scope = "namespace"
)

// Validate returns an error for unknown scopes. An empty scope is treated as
// ScopeShared by callers and is therefore accepted.
func (s Scope) Validate() error {
	switch s {
	case "", ScopeProcess, ScopeShared, ScopeNamespace:
		return nil
	}
	return fmt.Errorf("unsupported counter scope: %q", string(s))
}

// Provider hands out counters for namespaces according to a Scope.
type Provider struct {
	scope    Scope
	shared   Counter
	counters map[string]Counter
}

// NewProvider creates a provider for the given scope. For ScopeShared the
// supplied counter (or a fresh one when nil) is used by every namespace.
func NewProvider(scope Scope, shared Counter) (*Provider, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if scope == "" {
		scope = ScopeShared
	}
	ret := &Provider{scope: scope, counters: map[string]Counter{}}
	switch scope {
	case ScopeProcess:
		ret.shared = Process()
	case ScopeShared:
		if shared == nil {
			shared = New()
		}
		ret.shared = shared
	}
	return ret, nil
}

// Scope returns the provider scope.
func (p *Provider) Scope() Scope {
	return p.scope
}

// Counter returns the counter serving namespace. Not safe for concurrent use;
// providers are meant to be consulted while wiring, before allocation starts.
func (p *Provider) Counter(namespace string) Counter {
	if p.scope != ScopeNamespace {
		return p.shared
	}
	counter, ok := p.counters[namespace]
	if !ok {
		counter = New()
		p.counters[namespace] = counter
	}
	return counter
}
