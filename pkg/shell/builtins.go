package shell

import (
	"fmt"
	"os"

	"github.com/core-tools/hsu-shell/pkg/command"
)

// runBuiltin executes spec if it names one of the three built-in commands.
// handled reports whether the line was consumed; quit reports that the exit
// built-in ran and the loop must end.
func (s *Session) runBuiltin(spec *command.Spec) (handled bool, quit bool) {
	switch spec.Program {
	case "exit":
		fmt.Fprintln(s.out, "exiting shell")
		// Outstanding background children are not terminated; they keep
		// running as orphans after the shell is gone.
		if n := s.supervisor.Outstanding(); n > 0 {
			s.logger.Infof("Exiting with %d background children still running", n)
		}
		return true, true

	case "cd":
		s.changeDirectory(spec)
		return true, false

	case "status":
		fmt.Fprintln(s.out, s.supervisor.LastOutcome())
		return true, false
	}

	return false, false
}

func (s *Session) changeDirectory(spec *command.Spec) {
	dir := os.Getenv("HOME")
	if len(spec.Args) > 1 {
		dir = spec.Args[1]
	}
	if err := os.Chdir(dir); err != nil {
		fmt.Fprintf(s.out, "cd: %v\n", err)
	}
}
