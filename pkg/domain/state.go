package domain

// Status describes where a live test is in its run.
type Status string

const (
	StatusPending  Status = "pending"  // Created, body not started
	StatusRunning  Status = "running"  // Body is executing
	StatusComplete Status = "complete" // Body finished or test was closed
)

// Result describes the outcome-so-far of a live test.
type Result string

const (
	ResultSuccess Result = "success" // No failures or errors recorded
	ResultFailure Result = "failure" // An expectation failed
	ResultError   Result = "error"   // The test itself broke
)

// IsPassing reports whether the result still counts as a pass.
func (r Result) IsPassing() bool {
	return r == ResultSuccess
}

// State is the immutable (Status, Result) snapshot of a live test. It is a
// comparable value: two states are equal iff both fields match, so plain ==
// is structural equality.
type State struct {
	Status Status
	Result Result
}

// Terminal reports whether the test has finished executing.
func (s State) Terminal() bool {
	return s.Status == StatusComplete
}

func (s State) String() string {
	return string(s.Status) + "/" + string(s.Result)
}
