//go:build !windows

package process

import (
	"os"
	"syscall"
)

// Alive reports whether pid still names a running process. Used when a wait
// on a background child fails for a reason other than normal completion, to
// decide whether the child was lost or is still out there.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}

	// On Unix, FindProcess always succeeds regardless of whether the
	// process exists; signal 0 probes for existence without delivering
	// anything.
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	if errno, ok := err.(syscall.Errno); ok && errno == syscall.EPERM {
		return true
	}
	return false
}
