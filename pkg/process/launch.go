package process

import (
	stderrors "errors"
	"os"
	"os/exec"

	"github.com/core-tools/hsu-shell/pkg/command"
	"github.com/core-tools/hsu-shell/pkg/errors"
	"github.com/core-tools/hsu-shell/pkg/logging"
)

// outputFileMode matches the permissive mode redirection targets are
// created with.
const outputFileMode = 0777

// Launcher turns validated command specs into running child processes.
type Launcher struct {
	logger logging.Logger
}

func NewLauncher(logger logging.Logger) *Launcher {
	return &Launcher{
		logger: logger,
	}
}

// Launch creates exactly one child process running spec's program, placed in
// its own process group. Explicit redirection targets are honored for both
// placements; a background child with no explicit target gets the null
// device instead of the terminal. The returned cmd has been started but not
// waited on. started, when non-nil, is invoked with the child's pid the
// moment process creation succeeds, before Launch returns: callers that
// route signals or the terminal to the new child register it there, leaving
// no window in which the child is running but unknown.
//
// Error classification drives the supervisor's reaction: an io error means a
// redirection target could not be opened, a not_found error means the
// program image could not be executed, an internal error means process
// creation itself failed and the shell cannot usefully continue.
func (l *Launcher) Launch(spec *command.Spec, background bool, started func(pid int)) (*exec.Cmd, error) {
	if err := command.ValidateSpec(spec); err != nil {
		return nil, err
	}

	cmd := exec.Command(spec.Program, spec.Args[1:]...)
	setProcessGroup(cmd)

	var opened []*os.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	switch {
	case spec.InputPath != "":
		f, err := os.Open(spec.InputPath)
		if err != nil {
			return nil, errors.NewIOError("input file could not be opened", err).WithContext("path", spec.InputPath)
		}
		opened = append(opened, f)
		cmd.Stdin = f
	case background:
		f, err := os.Open(os.DevNull)
		if err != nil {
			return nil, errors.NewIOError("input file could not be opened", err).WithContext("path", os.DevNull)
		}
		opened = append(opened, f)
		cmd.Stdin = f
	default:
		cmd.Stdin = os.Stdin
	}

	switch {
	case spec.OutputPath != "":
		f, err := os.OpenFile(spec.OutputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFileMode)
		if err != nil {
			closeAll()
			return nil, errors.NewIOError("output file could not be opened", err).WithContext("path", spec.OutputPath)
		}
		opened = append(opened, f)
		cmd.Stdout = f
	case background:
		f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			closeAll()
			return nil, errors.NewIOError("output file could not be opened", err).WithContext("path", os.DevNull)
		}
		opened = append(opened, f)
		cmd.Stdout = f
	default:
		cmd.Stdout = os.Stdout
	}

	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		closeAll()
		if isExecFailure(err) {
			return nil, errors.NewNotFoundError("program could not be executed", err).WithContext("program", spec.Program)
		}
		return nil, errors.NewInternalError("process could not be created", err).WithContext("program", spec.Program)
	}

	if started != nil {
		started(cmd.Process.Pid)
	}

	// The child owns its own descriptor copies from here on.
	closeAll()

	l.logger.Debugf("Started process, pid: %d, program: %s, background: %v", cmd.Process.Pid, spec.Program, background)

	return cmd, nil
}

// isExecFailure reports whether a start error is the image-replacement kind
// (bad program name or image) rather than a process-creation failure.
func isExecFailure(err error) bool {
	return stderrors.Is(err, exec.ErrNotFound) ||
		stderrors.Is(err, os.ErrNotExist) ||
		stderrors.Is(err, os.ErrPermission)
}
