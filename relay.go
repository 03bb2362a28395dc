package relay

import (
	"log/slog"

	"github.com/aretw0/relay/internal/logging"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/aretw0/relay/pkg/stream"
	"github.com/google/uuid"
)

// MessageSink receives messages that have no stream subscriber, so diagnostic
// output is never silently dropped.
type MessageSink func(domain.Message)

// Controller owns the mutable state of a single live test. It is created
// once per execution attempt and mutated only by the execution engine; the
// read-only LiveTest view is what gets handed to observers.
//
// Controller is confined to the engine's logical thread. The completion
// signal it returns from Run and Close is the one concurrency-safe handle.
type Controller struct {
	id     uuid.UUID
	suite  *domain.Suite
	test   *domain.TestCase
	groups []*domain.Group

	// onRun starts the test body; onClose interrupts it. Each fires at most
	// once, guarded by runInvoked/closed below.
	onRun   func()
	onClose func()

	state  domain.State
	errors []domain.CapturedError

	stateChanges *stream.Stream[domain.State]
	errorStream  *stream.Stream[domain.CapturedError]
	messages     *stream.Stream[domain.Message]
	completer    *stream.Signal

	sink   MessageSink
	logger *slog.Logger

	runInvoked bool
	closed     bool

	view *LiveTest
}

// New creates a controller for one execution attempt of test within suite.
//
// onRun is invoked synchronously by Run to start the test body. onClose is
// invoked by Close, only if Run already happened, to interrupt the body; it
// owns calling ResolveComplete once the body has unwound. Neither callback
// fires during construction.
func New(suite *domain.Suite, test *domain.TestCase, onRun, onClose func(), opts ...Option) (*Controller, error) {
	if suite == nil {
		return nil, domain.ErrMissingSuite
	}
	if test == nil {
		return nil, domain.ErrMissingTest
	}

	c := &Controller{
		id:      uuid.New(),
		suite:   suite,
		test:    test,
		onRun:   onRun,
		onClose: onClose,
		state: domain.State{
			Status: domain.StatusPending,
			Result: domain.ResultSuccess,
		},
		stateChanges: stream.New[domain.State](),
		errorStream:  stream.New[domain.CapturedError](),
		messages:     stream.New[domain.Message](),
		completer:    stream.NewSignal(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.groups) == 0 {
		c.groups = []*domain.Group{suite.Group}
	}
	if c.logger == nil {
		c.logger = logging.New(slog.LevelInfo)
	}
	if c.sink == nil {
		c.sink = func(m domain.Message) {
			c.logger.Info("test message",
				"test", c.test.Name,
				"kind", m.Kind,
				"text", m.Text,
			)
		}
	}

	c.view = &LiveTest{controller: c}
	return c, nil
}

// LiveTest returns the read-only view of this controller. The same view is
// returned on every call.
func (c *Controller) LiveTest() *LiveTest {
	return c.view
}

// RecordError appends a captured error to the test's error log and publishes
// it on the error stream. A missing trace is normalized to an empty one; a
// nil error is ignored, there is nothing to record. Once the test is closed
// this is a silent no-op: nothing can be listening through closed streams.
func (c *Controller) RecordError(err error, trace domain.Trace) {
	if c.closed || err == nil {
		return
	}
	captured := domain.NewCapturedError(err, trace)
	c.errors = append(c.errors, captured)
	c.errorStream.Publish(captured)
}

// SetState replaces the test's current state and publishes the new value on
// the state stream. Setting a state equal to the current one, or setting any
// state after close, is a no-op, so the stream carries exactly the distinct
// transitions.
func (c *Controller) SetState(s domain.State) {
	if c.closed || s == c.state {
		return
	}
	c.state = s
	c.stateChanges.Publish(s)
}

// EmitMessage delivers a diagnostic message. If the message stream has a
// live subscriber the message is published there synchronously; otherwise it
// goes to the fallback sink. Unlike errors and states, messages still
// surface after close.
func (c *Controller) EmitMessage(m domain.Message) {
	if !c.closed && c.messages.HasSubscribers() {
		c.messages.Publish(m)
		return
	}
	c.sink(m)
}

// Run starts the test. It may be called at most once and never after Close:
// a second call fails with domain.ErrRunTwice and a call on a closed test
// fails with domain.ErrRunAfterClose, without invoking the start callback.
//
// On success the start callback runs synchronously and Run returns the
// completion channel, the same one LiveTest.OnComplete exposes.
func (c *Controller) Run() (<-chan struct{}, error) {
	if c.runInvoked {
		return nil, domain.ErrRunTwice
	}
	if c.closed {
		return nil, domain.ErrRunAfterClose
	}
	c.runInvoked = true

	c.logger.Debug("running test", "id", c.id, "test", c.test.Name)
	if c.onRun != nil {
		c.onRun()
	}
	return c.completer.Done(), nil
}

// Close shuts the test down. All three streams close immediately, so no
// further state, error, or message events are deliverable. If Run was never
// invoked the completion signal resolves on the spot; otherwise the stop
// callback fires and is responsible for resolving it once the in-flight body
// has unwound.
//
// Close is idempotent: repeat calls return the same completion channel with
// no further side effects.
func (c *Controller) Close() <-chan struct{} {
	if c.closed {
		return c.completer.Done()
	}
	c.closed = true

	c.stateChanges.Close()
	c.errorStream.Close()
	c.messages.Close()

	c.logger.Debug("closed test", "id", c.id, "test", c.test.Name, "ran", c.runInvoked)

	if !c.runInvoked {
		// Nothing to stop.
		c.completer.Resolve()
	} else if c.onClose != nil {
		c.onClose()
	}
	return c.completer.Done()
}

// ResolveComplete marks the test's execution as fully finished. The stop
// callback calls this once the interrupted body has unwound; the engine
// calls it after a normal finish. Calls after the first are no-ops.
func (c *Controller) ResolveComplete() {
	c.completer.Resolve()
}
