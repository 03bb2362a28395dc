package stream

import "slices"

// Source is the subscribe-only side of a Stream. It is the handle given to
// observers; the owning side keeps the full *Stream and with it the right to
// publish and close.
type Source[T any] interface {
	// Subscribe registers fn to receive every value published after this
	// call. Subscribing to a closed stream returns an inert subscription.
	Subscribe(fn func(T)) *Subscription[T]

	// HasSubscribers reports whether at least one live subscription exists.
	HasSubscribers() bool

	// Closed reports whether the stream has been closed.
	Closed() bool
}

// Stream is a synchronous broadcast channel. Publish invokes every currently
// registered subscriber before returning, in registration order.
//
// Stream is not safe for concurrent use. The execution engine owns all
// publishing and closing; subscribers run on the engine's goroutine.
type Stream[T any] struct {
	subs   []*Subscription[T]
	closed bool
}

// Subscription represents one registered subscriber on a Stream.
type Subscription[T any] struct {
	stream *Stream[T]
	fn     func(T)
	active bool
}

// New creates an open Stream with no subscribers.
func New[T any]() *Stream[T] {
	return &Stream[T]{}
}

var _ Source[int] = (*Stream[int])(nil)

// Subscribe registers fn to receive subsequent publishes. If the stream is
// already closed the returned subscription is inert and fn is never called.
func (s *Stream[T]) Subscribe(fn func(T)) *Subscription[T] {
	sub := &Subscription[T]{stream: s, fn: fn}
	if s.closed || fn == nil {
		return sub
	}
	sub.active = true
	s.subs = append(s.subs, sub)
	return sub
}

// Publish delivers v to every live subscriber, in registration order, before
// returning. Publishing on a closed stream is a no-op.
//
// A subscriber registered during dispatch only sees later publishes; a
// subscription cancelled during dispatch stops receiving immediately.
func (s *Stream[T]) Publish(v T) {
	if s.closed {
		return
	}
	// Real copy, not a slice-header alias: handlers may Subscribe (append)
	// or Cancel (compact s.subs in place) mid-dispatch, and neither may
	// disturb the set of subscribers this event is delivered to.
	subs := slices.Clone(s.subs)
	for _, sub := range subs {
		if sub.active {
			sub.fn(v)
		}
	}
}

// Close shuts the stream down. All subscriptions are cancelled and every
// future Publish is a no-op. Close is idempotent.
func (s *Stream[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.active = false
	}
	s.subs = nil
}

// Closed reports whether Close has been called.
func (s *Stream[T]) Closed() bool {
	return s.closed
}

// HasSubscribers reports whether at least one live subscription exists.
func (s *Stream[T]) HasSubscribers() bool {
	for _, sub := range s.subs {
		if sub.active {
			return true
		}
	}
	return false
}

// Cancel removes the subscription from its stream. Cancelling twice, or
// cancelling an inert subscription, is a no-op.
func (sub *Subscription[T]) Cancel() {
	if !sub.active {
		return
	}
	sub.active = false
	s := sub.stream
	for i, candidate := range s.subs {
		if candidate == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			break
		}
	}
}

// Active reports whether the subscription still receives publishes.
func (sub *Subscription[T]) Active() bool {
	return sub.active
}
