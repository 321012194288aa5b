package shell

import (
	"bufio"
	"fmt"

	"github.com/core-tools/hsu-shell/pkg/command"
)

const banner = "hsu shell, enter commands like ls or echo"

// Run drives the interactive loop: sweep finished background children,
// prompt, read one line, parse, run. It returns nil on exit or end of
// input, and an error only for a shell-fatal condition (the process-creation
// path in the supervisor).
func (s *Session) Run() error {
	s.policy.Install()
	defer s.policy.Uninstall()

	s.logger.Infof("Session starting, pid: %d", s.pid)
	fmt.Fprintln(s.out, banner)

	scanner := bufio.NewScanner(s.in)
	for {
		// Completions are surfaced before the next command, never
		// interleaved with it.
		s.supervisor.Sweep()

		fmt.Fprint(s.out, s.config.Prompt)
		if !scanner.Scan() {
			// End of input behaves like exit: the loop ends, background
			// children keep running.
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		spec, err := command.Parse(scanner.Text(), s.pid)
		if err != nil {
			fmt.Fprintf(s.out, "hshell: %v\n", err)
			continue
		}
		if spec == nil {
			continue
		}

		if handled, quit := s.runBuiltin(spec); handled {
			if quit {
				return nil
			}
			continue
		}

		if err := s.supervisor.Dispatch(spec, s.policy.ForegroundOnly()); err != nil {
			fmt.Fprintf(s.out, "hshell: %v\n", err)
			return err
		}
	}
}
