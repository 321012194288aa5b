package signals

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/atomic"

	"github.com/core-tools/hsu-shell/pkg/logging"
)

// The notices land asynchronously, usually on top of a partially typed
// prompt line; the leading newline keeps them on a line of their own.
const (
	enterForegroundOnlyNotice = "\nEntering foreground-only mode (& is now ignored)\n"
	exitForegroundOnlyNotice  = "\nExiting foreground-only mode\n"
)

// Policy owns the shell's process-wide signal dispositions. The shell itself
// never dies from the interrupt signal: it is caught here and forwarded to
// the current foreground child's process group, if any. The stop signal is
// never forwarded anywhere; it only toggles foreground-only mode.
//
// The mode flag is the single piece of state shared between the signal
// delivery goroutine and the main loop, so it is an atomic and nothing else
// is touched from the signal context.
type Policy struct {
	foregroundOnly atomic.Bool
	interrupt      func()
	notices        io.Writer
	logger         logging.Logger
	sigCh          chan os.Signal
	done           chan struct{}
}

// NewPolicy creates a signal policy. interrupt is invoked on every delivery
// of the interrupt signal and runs on the signal goroutine; notices receives
// the fixed mode-toggle lines (normally the terminal).
func NewPolicy(interrupt func(), notices io.Writer, logger logging.Logger) *Policy {
	return &Policy{
		interrupt: interrupt,
		notices:   notices,
		logger:    logger,
	}
}

// Install registers the process-wide dispositions and starts the delivery
// goroutine. Must be called once, before the first command is dispatched.
func (p *Policy) Install() {
	p.sigCh = make(chan os.Signal, 8)
	p.done = make(chan struct{})

	// Registering a handler replaces the default process-terminating
	// disposition, which is what makes the shell immune to the interrupt.
	signal.Notify(p.sigCh, syscall.SIGINT, syscall.SIGTSTP)

	go p.deliver()
}

// Uninstall restores default dispositions and stops the delivery goroutine.
func (p *Policy) Uninstall() {
	signal.Stop(p.sigCh)
	close(p.sigCh)
	<-p.done
}

// ForegroundOnly reads the current mode. The supervisor reads it exactly
// once per dispatch; a toggle mid-command affects only future dispatches.
func (p *Policy) ForegroundOnly() bool {
	return p.foregroundOnly.Load()
}

func (p *Policy) deliver() {
	defer close(p.done)

	for sig := range p.sigCh {
		switch sig {
		case syscall.SIGINT:
			p.logger.Debugf("Interrupt signal received, forwarding to foreground group")
			if p.interrupt != nil {
				p.interrupt()
			}
		case syscall.SIGTSTP:
			p.toggle()
		}
	}
}

func (p *Policy) toggle() {
	if p.foregroundOnly.Toggle() {
		// Toggle returns the previous value.
		io.WriteString(p.notices, exitForegroundOnlyNotice)
	} else {
		io.WriteString(p.notices, enterForegroundOnlyNotice)
	}
}
