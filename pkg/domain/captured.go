package domain

// CapturedError is an error produced by the code under test, paired with a
// structured stack trace. Captured errors are data: they travel through the
// error log and error stream, they are never raised by the controller.
type CapturedError struct {
	Err   error
	Trace Trace
}

// NewCapturedError pairs err with trace, normalizing a missing trace to an
// empty one.
func NewCapturedError(err error, trace Trace) CapturedError {
	return CapturedError{
		Err:   err,
		Trace: NormalizeTrace(trace),
	}
}

func (e CapturedError) String() string {
	if len(e.Trace) == 0 {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n" + e.Trace.String()
}
