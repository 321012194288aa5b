//go:build !windows

package process

import (
	"os/exec"

	"golang.org/x/sys/unix"
)

// setProcessGroup places the child in its own process group. Terminal
// signals are then never delivered to children directly; the shell forwards
// the interrupt to the foreground group explicitly and leaves background
// groups alone.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &unix.SysProcAttr{
		Setpgid: true,
	}
}

// InterruptGroup sends SIGINT to the process group led by pgid.
func InterruptGroup(pgid int) error {
	// Negative PID targets the whole process group.
	return unix.Kill(-pgid, unix.SIGINT)
}
