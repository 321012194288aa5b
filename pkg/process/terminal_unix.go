//go:build !windows

package process

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// GiveTerminalTo hands the controlling terminal's foreground slot to the
// process group led by pgid. A child in its own group must own that slot
// while it runs in the foreground: a read from the terminal by a
// non-foreground group stops it with SIGTTIN. A no-op when standard input
// is not a terminal.
func GiveTerminalTo(pgid int) {
	_ = unix.IoctlSetPointerInt(int(os.Stdin.Fd()), unix.TIOCSPGRP, pgid)
}

// ReclaimTerminal takes the foreground slot back once the foreground child
// is gone. The shell's group is not the foreground group at that point, so
// SIGTTOU is ignored for the duration of the handover.
func ReclaimTerminal() {
	signal.Ignore(syscall.SIGTTOU)
	defer signal.Reset(syscall.SIGTTOU)
	_ = unix.IoctlSetPointerInt(int(os.Stdin.Fd()), unix.TIOCSPGRP, unix.Getpgrp())
}
