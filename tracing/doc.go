// Package tracing integrates OpenTelemetry with graphid so that identifier
// allocation and element registration can be followed in distributed traces.
// Applications that do not initialise a provider get no-op spans.
package tracing
