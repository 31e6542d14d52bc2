package sequence

import (
	"errors"
	"math"
	"sync/atomic"
)

// ErrExhausted is returned once a counter has issued every representable value.
var ErrExhausted = errors.New("sequence: counter exhausted")

// Counter issues strictly increasing values.
type Counter interface {
	// Next returns the current value and advances the counter by one.
	Next() (uint64, error)
}

// Atomic is a lock-free Counter. The zero value is ready to use and starts at 0.
type Atomic struct {
	value atomic.Uint64
}

var _ Counter = (*Atomic)(nil)

// Next implements Counter. The largest issued value is math.MaxUint64-1; the
// counter then saturates at math.MaxUint64 and every further call fails.
func (a *Atomic) Next() (uint64, error) {
	for {
		current := a.value.Load()
		if current == math.MaxUint64 {
			return 0, ErrExhausted
		}
		if a.value.CompareAndSwap(current, current+1) {
			return current, nil
		}
	}
}

// Peek returns the value the next successful Next call would return.
func (a *Atomic) Peek() uint64 {
	return a.value.Load()
}

// New returns a fresh counter starting at zero.
func New() *Atomic {
	return &Atomic{}
}

// newAt is used by tests to position a counter near the end of its range.
func newAt(value uint64) *Atomic {
	ret := &Atomic{}
	ret.value.Store(value)
	return ret
}

var process = New()

// Process returns the process-wide counter shared by every ScopeProcess user.
func Process() Counter {
	return process
}
