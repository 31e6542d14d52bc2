package graphid

import (
	"github.com/viant/afs"
	"github.com/viant/graphid/model/graph"
	"github.com/viant/graphid/sequence"
	"github.com/viant/graphid/service/dao"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents graphid service option
type Option func(s *Service)

// WithConfig sets the service configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithCounter injects the counter shared by all namespaces. It is honoured
// for the shared scope only.
func WithCounter(counter sequence.Counter) Option {
	return func(s *Service) {
		s.counter = counter
	}
}

// WithElementDAO sets the element store, bypassing the store configuration
func WithElementDAO(elements dao.Service[string, graph.Element]) Option {
	return func(s *Service) {
		s.elements = elements
	}
}

// WithFS sets the afs service used by the fs store
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithSessionID sets the session identifier, a random UUID by default
func WithSessionID(id string) Option {
	return func(s *Service) {
		s.sessionID = id
	}
}

// WithTracing enables OpenTelemetry tracing with the stdout exporter. If
// outputFile is empty spans are written to stdout; otherwise to the supplied
// file path.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracing = &TracingConfig{Enabled: true, ServiceName: serviceName, ServiceVersion: serviceVersion, Output: outputFile}
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom
// SpanExporter (OTLP, Jaeger, Zipkin, in-memory ...).
func WithTracingExporter(exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.exporter = exporter
	}
}
