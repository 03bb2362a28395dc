package domain

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame is a single entry of a structured stack trace.
type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// Trace is a structured stack trace, outermost-call last. The zero-length
// trace is valid and means "no trace available".
type Trace []Frame

// NormalizeTrace converts a missing trace into an empty one, so a recorded
// error always carries a non-nil Trace.
func NormalizeTrace(t Trace) Trace {
	if t == nil {
		return Trace{}
	}
	return t
}

// CaptureTrace builds a Trace from the calling goroutine's stack. skip is the
// number of frames to omit on top of CaptureTrace itself; 0 starts at the
// caller.
func CaptureTrace(skip int) Trace {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return Trace{}
	}

	trace := make(Trace, 0, n)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		trace = append(trace, Frame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return trace
}

func (t Trace) String() string {
	lines := make([]string, len(t))
	for i, f := range t {
		lines[i] = f.String()
	}
	return strings.Join(lines, "\n")
}
