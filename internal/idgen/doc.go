// Package idgen wraps the UUID generator used for session identifiers so that
// it can be stubbed in tests. Element identifiers are never produced here –
// see package idmanager for those.
package idgen
