package relay

import (
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/stream"
	"github.com/google/uuid"
)

// LiveTest is the read-only view of one controller: the handle distributed
// to reporters and other observers. Every read reflects the controller's
// current value; Run and Close delegate straight back to it.
//
// The view exists as an encapsulation boundary, not a behavioral one: the
// mutation operations (RecordError, SetState, EmitMessage) are reachable
// only through the *Controller the execution engine keeps for itself.
type LiveTest struct {
	controller *Controller
}

// ID returns the unique identifier of this execution attempt.
func (t *LiveTest) ID() uuid.UUID {
	return t.controller.id
}

// Suite returns the suite the test belongs to.
func (t *LiveTest) Suite() *domain.Suite {
	return t.controller.suite
}

// Groups returns the ordered list of groups enclosing the test, outermost
// first.
func (t *LiveTest) Groups() []*domain.Group {
	groups := make([]*domain.Group, len(t.controller.groups))
	copy(groups, t.controller.groups)
	return groups
}

// Test returns the test being executed.
func (t *LiveTest) Test() *domain.TestCase {
	return t.controller.test
}

// State returns the test's current (status, result) state.
func (t *LiveTest) State() domain.State {
	return t.controller.state
}

// Errors returns a snapshot of all errors captured so far, in the order they
// were recorded. Mutating the returned slice does not affect the log.
func (t *LiveTest) Errors() []domain.CapturedError {
	errs := make([]domain.CapturedError, len(t.controller.errors))
	copy(errs, t.controller.errors)
	return errs
}

// OnStateChange returns the stream of state transitions. It emits every
// distinct transition, never a duplicate of the previous state.
func (t *LiveTest) OnStateChange() stream.Source[domain.State] {
	return t.controller.stateChanges
}

// OnError returns the stream of captured errors.
func (t *LiveTest) OnError() stream.Source[domain.CapturedError] {
	return t.controller.errorStream
}

// OnMessage returns the stream of diagnostic messages.
func (t *LiveTest) OnMessage() stream.Source[domain.Message] {
	return t.controller.messages
}

// OnComplete returns the completion channel. It closes exactly once, either
// when the test is closed before ever running, or when the interrupted body
// has fully unwound.
func (t *LiveTest) OnComplete() <-chan struct{} {
	return t.controller.completer.Done()
}

// Run starts the test. See Controller.Run.
func (t *LiveTest) Run() (<-chan struct{}, error) {
	return t.controller.Run()
}

// Close shuts the test down. See Controller.Close.
func (t *LiveTest) Close() <-chan struct{} {
	return t.controller.Close()
}
