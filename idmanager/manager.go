// Package idmanager assigns prefixed, sequential string identifiers to graph
// elements and decides which externally supplied values are acceptable
// identifiers.
//
// A Manager is the extension point a host graph engine calls:
//
//	vertices := idmanager.New("V", counter)
//	id, _ := vertices.Next()        // "V0"
//	vertices.Allow("V3")            // true
//	vertices.Normalize(42).Err      // InvalidIdentifierType
//
// Managers sharing a counter never hand out the same numeric suffix, even when
// their prefixes differ.
package idmanager

import (
	"fmt"
	"strconv"

	"github.com/viant/graphid/sequence"
)

// Allocator issues new identifiers.
type Allocator interface {
	Next() (string, error)
}

// Normalizer validates and converts identifier candidates.
type Normalizer interface {
	Allow(candidate interface{}) bool
	Normalize(candidate interface{}) Result
}

// Manager implements Allocator and Normalizer for a single namespace.
type Manager struct {
	prefix  string
	counter sequence.Counter
}

var (
	_ Allocator  = (*Manager)(nil)
	_ Normalizer = (*Manager)(nil)
)

// New creates a manager issuing prefix+N identifiers from counter. A nil
// counter gives the manager a private one.
func New(prefix string, counter sequence.Counter) *Manager {
	if counter == nil {
		counter = sequence.New()
	}
	return &Manager{prefix: prefix, counter: counter}
}

// Prefix returns the namespace prefix.
func (m *Manager) Prefix() string {
	return m.prefix
}

// Counter returns the counter backing the manager.
func (m *Manager) Counter() sequence.Counter {
	return m.counter
}

// Next allocates a fresh identifier.
func (m *Manager) Next() (string, error) {
	seq, err := m.counter.Next()
	if err != nil {
		return "", fmt.Errorf("failed to allocate %q identifier: %w", m.prefix, err)
	}
	return m.prefix + strconv.FormatUint(seq, 10), nil
}

// Allow reports whether candidate can be used as an identifier as-is.
func (m *Manager) Allow(candidate interface{}) bool {
	_, ok := candidate.(string)
	return ok
}

// Normalize classifies candidate: nil is Absent, a string is Valid and is
// returned unchanged, anything else is Invalid.
func (m *Manager) Normalize(candidate interface{}) Result {
	switch actual := candidate.(type) {
	case nil:
		return Result{Kind: Absent}
	case string:
		return Result{Kind: Valid, ID: actual}
	default:
		return Result{Kind: Invalid, Err: newInvalidIdentifierTypeError(m.prefix, candidate)}
	}
}

// Convert is Normalize in (id, ok, err) form: ok is false for absent
// candidates, err is set for invalid ones.
func (m *Manager) Convert(candidate interface{}) (string, bool, error) {
	return m.Normalize(candidate).Unpack()
}
