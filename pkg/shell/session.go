package shell

import (
	"io"
	"os"

	"github.com/core-tools/hsu-shell/pkg/jobs"
	"github.com/core-tools/hsu-shell/pkg/logging"
	"github.com/core-tools/hsu-shell/pkg/process"
	"github.com/core-tools/hsu-shell/pkg/signals"
)

// Session is the single process-wide shell instance: its configuration, its
// signal policy, its job supervisor, and the streams of the interactive
// loop. One Session lives for the whole program run.
type Session struct {
	config     *Config
	logger     logging.Logger
	in         io.Reader
	out        io.Writer
	pid        int
	policy     *signals.Policy
	supervisor *jobs.Supervisor
}

func logPrefix(module string) string {
	return "module: " + module + " , "
}

// NewSession wires a session to the process's terminal streams.
func NewSession(config *Config, logger logging.Logger) *Session {
	return newSessionWithStreams(config, logger, os.Stdin, os.Stdout)
}

func newSessionWithStreams(config *Config, logger logging.Logger, in io.Reader, out io.Writer) *Session {
	s := &Session{
		config: config,
		logger: logger,
		in:     in,
		out:    out,
		pid:    os.Getpid(),
	}

	launcher := process.NewLauncher(logging.NewPrefixLogger(logPrefix("process"), logger))
	s.supervisor = jobs.NewSupervisor(launcher, out, logging.NewPrefixLogger(logPrefix("jobs"), logger))
	s.policy = signals.NewPolicy(s.supervisor.InterruptForeground, out, logging.NewPrefixLogger(logPrefix("signals"), logger))

	return s
}
