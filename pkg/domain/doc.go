/*
Package domain contains the value types shared by the relay controller and
its observers.

It is kept pure and free of external dependencies like I/O or persistence;
everything here is plain immutable data.

# Key Entities

  - State: the (Status, Result) pair describing a live test's progress and
    outcome-so-far.
  - CapturedError: an error produced during test execution paired with a
    structured stack trace, recorded rather than thrown.
  - Message: a diagnostic payload (print output, skip notices) emitted while
    a test runs.
  - Suite, Group, TestCase: the identity of the test being executed.
*/
package domain
