package jobs

import (
	"fmt"
	"io"
	"os/exec"

	"go.uber.org/atomic"

	"github.com/core-tools/hsu-shell/pkg/command"
	"github.com/core-tools/hsu-shell/pkg/errors"
	"github.com/core-tools/hsu-shell/pkg/logging"
	"github.com/core-tools/hsu-shell/pkg/process"
)

// Distinguished exit values recorded for commands that never produced a wait
// status of their own, matching the codes a child would have exited with.
const (
	redirectionFailureCode = 1
	execFailureCode        = 2
)

// completion is what a background monitor reports once its child is reaped.
type completion struct {
	pid     int
	outcome process.Outcome
	err     error
}

// Supervisor owns every child the shell spawns: it blocks on the single
// foreground child, tracks an unbounded set of background children, and
// surfaces their completions once per loop iteration. All of its state is
// touched only from the main loop, except fgGroup, which the signal
// goroutine reads to find the interrupt target.
type Supervisor struct {
	launcher    *process.Launcher
	out         io.Writer
	logger      logging.Logger
	tracked     map[int]struct{}
	completions chan completion
	fgGroup     atomic.Int32
	last        process.Outcome
}

func NewSupervisor(launcher *process.Launcher, out io.Writer, logger logging.Logger) *Supervisor {
	return &Supervisor{
		launcher:    launcher,
		out:         out,
		logger:      logger,
		tracked:     make(map[int]struct{}),
		completions: make(chan completion, 64),
	}
}

// Dispatch runs one external command. The effective placement is decided
// here, once: a background request is honored only when foreground-only
// mode is off at dispatch time. A non-nil error is shell-fatal; every other
// failure is charged to the command itself and the loop continues.
func (s *Supervisor) Dispatch(spec *command.Spec, foregroundOnly bool) error {
	background := spec.Background && !foregroundOnly

	if background {
		return s.dispatchBackground(spec)
	}
	return s.dispatchForeground(spec)
}

func (s *Supervisor) dispatchForeground(spec *command.Spec) error {
	// The child becomes the interrupt target and owns the terminal from
	// the moment it exists: a stdin-reading child whose group is not the
	// terminal's foreground group would stop on SIGTTIN.
	cmd, err := s.launcher.Launch(spec, false, func(pid int) {
		s.fgGroup.Store(int32(pid))
		process.GiveTerminalTo(pid)
	})
	if err != nil {
		return s.recordLaunchFailure(spec, err)
	}

	waitErr := cmd.Wait()
	process.ReclaimTerminal()
	s.fgGroup.Store(0)

	if waitErr != nil {
		if _, ok := waitErr.(*exec.ExitError); !ok {
			// Wait itself failed; the child is gone but its status is lost.
			s.logger.Errorf("Wait on foreground child failed, pid: %d, error: %v", cmd.Process.Pid, waitErr)
			fmt.Fprintf(s.out, "hshell: wait failed: %v\n", waitErr)
			s.last = process.Exited(execFailureCode)
			return nil
		}
	}

	outcome := process.OutcomeFromState(cmd.ProcessState)
	s.last = outcome

	// Abnormal terminations are announced immediately; normal exits are
	// only surfaced on demand via the status built-in.
	if outcome.Signaled {
		fmt.Fprintf(s.out, "%s\n", outcome)
	}
	return nil
}

func (s *Supervisor) dispatchBackground(spec *command.Spec) error {
	cmd, err := s.launcher.Launch(spec, true, nil)
	if err != nil {
		return s.recordLaunchFailure(spec, err)
	}

	pid := cmd.Process.Pid
	fmt.Fprintf(s.out, "background pid is %d\n", pid)

	s.tracked[pid] = struct{}{}
	go s.monitor(pid, cmd)
	return nil
}

// monitor blocks in wait on behalf of one background child and posts its
// completion. Runs on its own goroutine; the channel send is its only
// interaction with the rest of the supervisor.
func (s *Supervisor) monitor(pid int, cmd *exec.Cmd) {
	err := cmd.Wait()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			err = nil
		}
	}
	s.completions <- completion{
		pid:     pid,
		outcome: process.OutcomeFromState(cmd.ProcessState),
		err:     err,
	}
}

// Sweep drains completed background children without blocking. It runs once
// per loop iteration, before the next command is dispatched, and stops the
// moment nothing more has completed. Background completions never touch the
// last foreground outcome.
func (s *Supervisor) Sweep() {
	for {
		select {
		case c := <-s.completions:
			if _, ok := s.tracked[c.pid]; !ok {
				s.logger.Warnf("Completion for untracked child, pid: %d", c.pid)
				continue
			}
			delete(s.tracked, c.pid)

			if c.err != nil {
				s.logger.Errorf("Wait on background child failed, pid: %d, still alive: %v, error: %v",
					c.pid, process.Alive(c.pid), c.err)
				fmt.Fprintf(s.out, "hshell: wait failed for pid %d: %v\n", c.pid, c.err)
				continue
			}
			fmt.Fprintf(s.out, "background pid %d is done: %s\n", c.pid, c.outcome)
		default:
			return
		}
	}
}

// InterruptForeground forwards the interrupt to the current foreground
// child's process group, if one is running. Safe to call from the signal
// goroutine: it reads one atomic and issues one kill.
func (s *Supervisor) InterruptForeground() {
	pid := int(s.fgGroup.Load())
	if pid <= 0 {
		return
	}
	// The child leads its own group, so the group id is its pid.
	if err := process.InterruptGroup(pid); err != nil {
		s.logger.Warnf("Failed to interrupt foreground group, pgid: %d, error: %v", pid, err)
	}
}

// LastOutcome returns the decoded status of the most recent foreground
// command. Its zero value, exit value 0, is what status reports before any
// command has run.
func (s *Supervisor) LastOutcome() process.Outcome {
	return s.last
}

// Outstanding returns the number of background children not yet reaped.
// Children still outstanding when the shell exits are left running; the
// shell never kills them on its way out.
func (s *Supervisor) Outstanding() int {
	return len(s.tracked)
}

// recordLaunchFailure converts a launch error into the outcome the failed
// child would have exited with. Only process-creation failures propagate:
// a shell that can no longer spawn has nothing left to do.
func (s *Supervisor) recordLaunchFailure(spec *command.Spec, err error) error {
	switch {
	case errors.IsIOError(err):
		s.logger.Errorf("Redirection failed, program: %s, error: %v", spec.Program, err)
		fmt.Fprintf(s.out, "hshell: %v\n", err)
		s.last = process.Exited(redirectionFailureCode)
		return nil
	case errors.IsNotFoundError(err), errors.IsValidationError(err):
		s.logger.Errorf("Launch failed, program: %s, error: %v", spec.Program, err)
		fmt.Fprintf(s.out, "hshell: %s: command could not be executed\n", spec.Program)
		s.last = process.Exited(execFailureCode)
		return nil
	default:
		s.logger.Errorf("Process creation failed, program: %s, error: %v", spec.Program, err)
		return err
	}
}
