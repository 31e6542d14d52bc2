// Package sequence provides the monotonic counters identifier managers draw
// their numeric suffixes from.
//
// A Counter starts at zero and every successful Next call returns the
// pre-increment value, so the first issued value is 0. Counters are safe for
// concurrent use and never go backwards; once the uint64 range is used up a
// counter stays saturated and reports ErrExhausted instead of wrapping.
//
// How counters are shared between namespaces is a wiring decision expressed
// with Scope:
//
//   - ScopeProcess   – one counter for the whole process (see Process)
//   - ScopeShared    – one counter per owning service, shared by its namespaces
//   - ScopeNamespace – an independent counter per namespace
package sequence
