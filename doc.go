/*
Package relay is the lifecycle core for a single executing test case.

A Controller owns the authoritative mutable state of one test attempt: its
current (status, result) state, the append-only log of captured errors, three
broadcast streams (state changes, errors, messages), and a one-shot
completion signal. The execution engine that actually runs the test body
mutates the test exclusively through the controller; reporters and other
observers watch it exclusively through the read-only LiveTest view.

# Concept

Relay sits between "something that runs a test" and "something that observes
a test". The engine publishes state transitions, errors, and diagnostic
messages; any number of observers subscribe to the streams they care about.
Delivery is synchronous and single-threaded, so every observer perceives
events in exactly the order the engine issued them, regardless of which
streams it subscribes to.

# Lifecycle

A controller passes through three phases:

  - idle: constructed, Run not yet called.
  - active: Run called exactly once; the start callback has fired and the
    engine is publishing events.
  - closed: Close called; all streams are shut and no further observable
    mutation is possible.

Run may be called at most once and never after Close; violations fail with
domain.ErrRunTwice or domain.ErrRunAfterClose. Close is idempotent and is the
only cancellation primitive: callers race timeout-driven closes against
normal completion, and closing a test that never ran resolves its completion
signal immediately.

# Usage

	suite := domain.NewSuite("integration")
	test := &domain.TestCase{Name: "TestRoundTrip"}

	var ctrl *relay.Controller
	ctrl, err := relay.New(suite, test,
		func() {
			// start the test body
		},
		func() {
			// interrupt the test body; resolve once it has unwound
			ctrl.ResolveComplete()
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	live := ctrl.LiveTest()
	live.OnStateChange().Subscribe(func(s domain.State) {
		log.Println("state:", s)
	})

	done, err := ctrl.Run()
	if err != nil {
		log.Fatal(err)
	}

	ctrl.SetState(domain.State{Status: domain.StatusRunning, Result: domain.ResultSuccess})
	// ... the engine publishes errors, messages, and further states ...
	ctrl.SetState(domain.State{Status: domain.StatusComplete, Result: domain.ResultSuccess})
	ctrl.Close()

	<-done
*/
package relay
