//go:build !windows

package process

import (
	"os"
	"syscall"
)

// OutcomeFromState decodes the wait status of a reaped child. On Unix the
// ProcessState wraps a syscall.WaitStatus carrying both exit and signal
// information.
func OutcomeFromState(state *os.ProcessState) Outcome {
	if state == nil {
		return Outcome{Code: -1}
	}
	if status, ok := state.Sys().(syscall.WaitStatus); ok {
		return decodeWaitStatus(status)
	}
	return Outcome{Code: state.ExitCode()}
}

func decodeWaitStatus(status syscall.WaitStatus) Outcome {
	if status.Signaled() {
		return Outcome{Signal: int(status.Signal()), Signaled: true}
	}
	return Outcome{Code: status.ExitStatus()}
}
