package stream

import "sync"

// Signal is a one-shot completion signal. It starts unresolved; Resolve flips
// it exactly once, and Done provides a channel that closes on resolution.
//
// Unlike Stream, Signal is safe for concurrent use: callers routinely await
// completion from goroutines other than the one driving the test.
type Signal struct {
	once sync.Once
	done chan struct{}
}

// NewSignal creates an unresolved Signal.
func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Resolve marks the signal as complete. Calls after the first are no-ops.
func (s *Signal) Resolve() {
	s.once.Do(func() {
		close(s.done)
	})
}

// Done returns a channel that is closed once the signal resolves. The same
// channel is returned on every call.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// Resolved reports whether Resolve has been called.
func (s *Signal) Resolved() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
