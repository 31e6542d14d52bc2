package idmanager

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifierType is matched (errors.Is) by every rejection of a
// non-string identifier candidate.
var ErrInvalidIdentifierType = errors.New("invalid identifier type")

// InvalidIdentifierTypeError describes a rejected identifier candidate.
type InvalidIdentifierTypeError struct {
	Namespace string
	Type      string
}

func (e *InvalidIdentifierTypeError) Error() string {
	if e.Namespace == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidIdentifierType, e.Type)
	}
	return fmt.Sprintf("%v: %s (namespace %q)", ErrInvalidIdentifierType, e.Type, e.Namespace)
}

func (e *InvalidIdentifierTypeError) Unwrap() error {
	return ErrInvalidIdentifierType
}

func newInvalidIdentifierTypeError(namespace string, candidate interface{}) error {
	return &InvalidIdentifierTypeError{Namespace: namespace, Type: fmt.Sprintf("%T", candidate)}
}
