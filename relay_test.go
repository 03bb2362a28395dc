package relay_test

import (
	"errors"
	"testing"

	"github.com/aretw0/relay"
	"github.com/aretw0/relay/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	statePending         = domain.State{Status: domain.StatusPending, Result: domain.ResultSuccess}
	stateRunning         = domain.State{Status: domain.StatusRunning, Result: domain.ResultSuccess}
	stateCompleteSuccess = domain.State{Status: domain.StatusComplete, Result: domain.ResultSuccess}
	stateCompleteFailure = domain.State{Status: domain.StatusComplete, Result: domain.ResultFailure}
)

// callbackSpy counts lifecycle callback invocations.
type callbackSpy struct {
	runs   int
	closes int
}

func (s *callbackSpy) onRun()   { s.runs++ }
func (s *callbackSpy) onClose() { s.closes++ }

func newController(t *testing.T, opts ...relay.Option) (*relay.Controller, *callbackSpy) {
	t.Helper()
	spy := &callbackSpy{}
	ctrl, err := relay.New(
		domain.NewSuite("suite"),
		&domain.TestCase{Name: "TestExample"},
		spy.onRun,
		spy.onClose,
		opts...,
	)
	require.NoError(t, err)
	return ctrl, spy
}

func TestNew_RequiresIdentity(t *testing.T) {
	_, err := relay.New(nil, &domain.TestCase{Name: "TestExample"}, nil, nil)
	assert.ErrorIs(t, err, domain.ErrMissingSuite)

	_, err = relay.New(domain.NewSuite("suite"), nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrMissingTest)
}

func TestNew_InitialState(t *testing.T) {
	ctrl, spy := newController(t)
	live := ctrl.LiveTest()

	assert.Equal(t, statePending, live.State())
	assert.Empty(t, live.Errors())
	assert.Zero(t, spy.runs, "start callback must not fire during construction")
	assert.Zero(t, spy.closes, "stop callback must not fire during construction")
}

func TestSetState_EmitsOnlyDistinctTransitions(t *testing.T) {
	ctrl, _ := newController(t)

	var seen []domain.State
	ctrl.LiveTest().OnStateChange().Subscribe(func(s domain.State) {
		seen = append(seen, s)
	})

	ctrl.SetState(stateRunning)
	ctrl.SetState(stateRunning) // duplicate, must be a no-op
	ctrl.SetState(stateCompleteSuccess)

	assert.Equal(t, []domain.State{stateRunning, stateCompleteSuccess}, seen)
	assert.Equal(t, stateCompleteSuccess, ctrl.LiveTest().State())
}

func TestRecordError_AppendsAndPublishes(t *testing.T) {
	ctrl, _ := newController(t)
	live := ctrl.LiveTest()

	var seen []domain.CapturedError
	live.OnError().Subscribe(func(e domain.CapturedError) {
		seen = append(seen, e)
	})

	first := errors.New("first")
	second := errors.New("second")
	ctrl.RecordError(first, nil)
	ctrl.RecordError(second, domain.CaptureTrace(0))

	require.Len(t, seen, 2)
	assert.Equal(t, first, seen[0].Err)
	assert.NotNil(t, seen[0].Trace, "missing trace must be normalized")
	assert.Equal(t, second, seen[1].Err)
	assert.NotEmpty(t, seen[1].Trace)

	log := live.Errors()
	require.Len(t, log, 2)
	assert.Equal(t, seen, log)
}

func TestRecordError_IgnoresNilError(t *testing.T) {
	ctrl, _ := newController(t)
	live := ctrl.LiveTest()

	events := 0
	live.OnError().Subscribe(func(domain.CapturedError) { events++ })

	ctrl.RecordError(nil, nil)

	assert.Empty(t, live.Errors(), "nil error must not enter the log")
	assert.Zero(t, events)
}

func TestRun_InvokesStartCallbackOnce(t *testing.T) {
	ctrl, spy := newController(t)

	done, err := ctrl.Run()
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.Equal(t, 1, spy.runs)
}

func TestRun_SecondCallFails(t *testing.T) {
	ctrl, spy := newController(t)

	_, err := ctrl.Run()
	require.NoError(t, err)

	_, err = ctrl.Run()
	assert.ErrorIs(t, err, domain.ErrRunTwice)
	assert.Equal(t, 1, spy.runs, "first call's effects must be unaffected")
}

func TestRun_AfterCloseFails(t *testing.T) {
	ctrl, spy := newController(t)
	ctrl.Close()

	_, err := ctrl.Run()
	assert.ErrorIs(t, err, domain.ErrRunAfterClose)
	assert.Zero(t, spy.runs, "start callback must never fire on a closed test")
}

func TestClose_BeforeRunResolvesImmediately(t *testing.T) {
	ctrl, spy := newController(t)

	done := ctrl.Close()

	select {
	case <-done:
	default:
		t.Fatal("completion signal not resolved on close-before-run")
	}
	assert.Zero(t, spy.closes, "stop callback must not fire when run never happened")
}

func TestClose_AfterRunInvokesStopCallback(t *testing.T) {
	ctrl, spy := newController(t)

	_, err := ctrl.Run()
	require.NoError(t, err)

	done := ctrl.Close()
	assert.Equal(t, 1, spy.closes)

	// The stop callback owns resolution; it has not resolved yet.
	select {
	case <-done:
		t.Fatal("signal resolved before the stop callback finished unwinding")
	default:
	}

	ctrl.ResolveComplete()
	select {
	case <-done:
	default:
		t.Fatal("signal not resolved after ResolveComplete")
	}
}

func TestClose_IsIdempotent(t *testing.T) {
	ctrl, spy := newController(t)

	_, err := ctrl.Run()
	require.NoError(t, err)

	first := ctrl.Close()
	second := ctrl.Close()

	assert.Equal(t, first, second, "repeat close must return the same signal")
	assert.Equal(t, 1, spy.closes, "stop callback fires at most once total")
}

func TestClose_RunAndCloseShareSignal(t *testing.T) {
	ctrl, _ := newController(t)

	fromRun, err := ctrl.Run()
	require.NoError(t, err)
	fromClose := ctrl.Close()

	assert.Equal(t, fromRun, fromClose)
	assert.Equal(t, fromClose, ctrl.LiveTest().OnComplete())
}

func TestClose_SilencesMutations(t *testing.T) {
	ctrl, _ := newController(t)
	live := ctrl.LiveTest()

	stateEvents := 0
	errorEvents := 0
	live.OnStateChange().Subscribe(func(domain.State) { stateEvents++ })
	live.OnError().Subscribe(func(domain.CapturedError) { errorEvents++ })

	ctrl.SetState(stateRunning)
	ctrl.RecordError(errors.New("before close"), nil)
	ctrl.Close()

	ctrl.SetState(stateCompleteFailure)
	ctrl.RecordError(errors.New("after close"), nil)

	assert.Equal(t, stateRunning, live.State(), "state must not change after close")
	assert.Len(t, live.Errors(), 1, "error log must not grow after close")
	assert.Equal(t, 1, stateEvents)
	assert.Equal(t, 1, errorEvents)
}

func TestOrdering_AcrossStreams(t *testing.T) {
	ctrl, _ := newController(t)
	live := ctrl.LiveTest()

	var order []string
	live.OnStateChange().Subscribe(func(s domain.State) {
		order = append(order, "state:"+s.String())
	})
	live.OnError().Subscribe(func(e domain.CapturedError) {
		order = append(order, "error:"+e.Err.Error())
	})

	ctrl.SetState(stateRunning)
	ctrl.RecordError(errors.New("e1"), nil)
	ctrl.SetState(stateCompleteFailure)

	assert.Equal(t, []string{
		"state:running/success",
		"error:e1",
		"state:complete/failure",
	}, order, "observers must see events in exact issue order across streams")
}

func TestEmitMessage_PublishesToSubscriber(t *testing.T) {
	sunk := 0
	ctrl, _ := newController(t, relay.WithMessageSink(func(domain.Message) { sunk++ }))
	live := ctrl.LiveTest()

	var seen []domain.Message
	live.OnMessage().Subscribe(func(m domain.Message) {
		seen = append(seen, m)
	})

	ctrl.EmitMessage(domain.PrintMessage("hello"))

	assert.Equal(t, []domain.Message{domain.PrintMessage("hello")}, seen)
	assert.Zero(t, sunk, "sink must not fire while a subscriber is attached")
}

func TestEmitMessage_FallsBackWithoutSubscriber(t *testing.T) {
	var sunk []domain.Message
	ctrl, _ := newController(t, relay.WithMessageSink(func(m domain.Message) {
		sunk = append(sunk, m)
	}))

	ctrl.EmitMessage(domain.SkipMessage("not supported here"))

	assert.Equal(t, []domain.Message{domain.SkipMessage("not supported here")}, sunk)
}

func TestEmitMessage_FallsBackAfterClose(t *testing.T) {
	var sunk []domain.Message
	ctrl, _ := newController(t, relay.WithMessageSink(func(m domain.Message) {
		sunk = append(sunk, m)
	}))
	ctrl.LiveTest().OnMessage().Subscribe(func(domain.Message) {
		t.Fatal("closed stream must not deliver")
	})

	ctrl.Close()
	ctrl.EmitMessage(domain.PrintMessage("late output"))

	require.Len(t, sunk, 1, "messages must never be silently dropped")
	assert.Equal(t, "late output", sunk[0].Text)
}
