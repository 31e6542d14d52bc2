package graphid

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/graphid/internal/env"
	"github.com/viant/graphid/sequence"
	"gopkg.in/yaml.v3"
)

// Store kinds
const (
	StoreMemory = "memory"
	StoreFS     = "fs"
)

// Config is a serialisable representation of the service configuration. It
// can be populated from YAML or JSON. The zero-value is useful – empty fields
// fall back to DefaultConfig values in New.
type Config struct {
	Counter    CounterConfig    `json:"counter" yaml:"counter"`
	Namespaces NamespacesConfig `json:"namespaces" yaml:"namespaces"`
	Store      StoreConfig      `json:"store" yaml:"store"`
	Tracing    TracingConfig    `json:"tracing" yaml:"tracing"`
}

type CounterConfig struct {
	Scope sequence.Scope `json:"scope,omitempty" yaml:"scope,omitempty"`
}

// NamespacesConfig holds the identifier prefixes
type NamespacesConfig struct {
	Vertex string `json:"vertex,omitempty" yaml:"vertex,omitempty"`
	Edge   string `json:"edge,omitempty" yaml:"edge,omitempty"`
}

type StoreConfig struct {
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

type TracingConfig struct {
	Enabled        bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	ServiceName    string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	ServiceVersion string `json:"serviceVersion,omitempty" yaml:"serviceVersion,omitempty"`
	Output         string `json:"output,omitempty" yaml:"output,omitempty"`
}

// DefaultConfig returns a Config populated with the default values. Callers
// may modify the returned struct before passing it to New via WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Counter:    CounterConfig{Scope: sequence.ScopeShared},
		Namespaces: NamespacesConfig{Vertex: "V", Edge: "E"},
		Store:      StoreConfig{Kind: StoreMemory},
		Tracing:    TracingConfig{ServiceName: "graphid", ServiceVersion: "0.1.0"},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if err := c.Counter.Scope.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("counter.scope: %w", err))
	}
	if c.Namespaces.Vertex == "" {
		errs = append(errs, fmt.Errorf("namespaces.vertex must not be empty"))
	}
	if c.Namespaces.Edge == "" {
		errs = append(errs, fmt.Errorf("namespaces.edge must not be empty"))
	}
	if c.Namespaces.Vertex != "" && c.Namespaces.Vertex == c.Namespaces.Edge {
		errs = append(errs, fmt.Errorf("namespaces.vertex and namespaces.edge must differ: %q", c.Namespaces.Vertex))
	}
	switch c.Store.Kind {
	case "", StoreMemory:
	case StoreFS:
		if c.Store.URL == "" {
			errs = append(errs, fmt.Errorf("store.url is required for %q store", StoreFS))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported store.kind: %q", c.Store.Kind))
	}
	return errors.Join(errs...)
}

// DecodeConfig expands ${env.KEY} expressions in data and decodes it (YAML or
// JSON) on top of DefaultConfig. The result is validated.
func DecodeConfig(data []byte) (*Config, error) {
	ret := DefaultConfig()
	expanded := env.Expand(string(data))
	if err := yaml.Unmarshal([]byte(expanded), ret); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadConfig reads configuration from any afs supported URL.
func LoadConfig(ctx context.Context, URL string, fs afs.Service) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret, err := DecodeConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return ret, nil
}
