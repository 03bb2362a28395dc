/*
Package stream provides the event plumbing used by the relay controller.

It contains two primitives:

  - Stream: a broadcast channel that delivers every published value to all
    registered subscribers synchronously, in registration order. Because
    delivery happens inside the Publish call itself, events published on
    different streams by the same caller are observed by every subscriber in
    the exact order the caller issued them.
  - Signal: a one-shot completion signal that resolves at most once and can
    be awaited by any number of goroutines.

Streams are confined to the single logical thread that drives a test (the
execution engine). Signals are safe for concurrent waiters.
*/
package stream
