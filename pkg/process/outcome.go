package process

import (
	"fmt"
)

// Outcome is the decoded form of a raw wait status: either a normal exit
// with a code or a termination by signal.
type Outcome struct {
	Code     int
	Signal   int
	Signaled bool
}

// Exited returns an outcome for a command that never reached a wait status,
// e.g. a launch that failed before the child image could start.
func Exited(code int) Outcome {
	return Outcome{Code: code}
}

// String renders the outcome the way the status built-in and the background
// completion announcements print it.
func (o Outcome) String() string {
	if o.Signaled {
		return fmt.Sprintf("terminated by signal %d", o.Signal)
	}
	return fmt.Sprintf("exit value %d", o.Code)
}
