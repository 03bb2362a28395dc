package domain

import "errors"

// ErrRunTwice is returned when Run is invoked a second time on the same
// controller.
var ErrRunTwice = errors.New("run called twice")

// ErrRunAfterClose is returned when Run is invoked after Close.
var ErrRunAfterClose = errors.New("run called on closed test")

// ErrMissingSuite is returned when a controller is constructed without a
// suite.
var ErrMissingSuite = errors.New("suite is required")

// ErrMissingTest is returned when a controller is constructed without a
// test.
var ErrMissingTest = errors.New("test is required")
