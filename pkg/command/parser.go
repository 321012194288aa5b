package command

import (
	"strconv"
	"strings"

	"github.com/core-tools/hsu-shell/pkg/errors"
)

// pidToken is expanded to the shell's own process id anywhere it appears,
// including embedded in a larger word (e.g. out$$.txt).
const pidToken = "$$"

// Parse splits one input line into a command spec. Tokens are separated by
// whitespace; "<" and ">" take the following token as a redirection target
// and "&" marks the command for background dispatch. A nil spec with a nil
// error means the line carried no command (blank line or "#" comment).
func Parse(line string, shellPID int) (*Spec, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	pid := strconv.Itoa(shellPID)
	tokens := strings.Fields(trimmed)

	spec := &Spec{}
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch token {
		case "<":
			i++
			if i >= len(tokens) {
				return nil, errors.NewValidationError("input redirection requires a file name", nil).WithContext("line", line)
			}
			spec.InputPath = strings.ReplaceAll(tokens[i], pidToken, pid)
		case ">":
			i++
			if i >= len(tokens) {
				return nil, errors.NewValidationError("output redirection requires a file name", nil).WithContext("line", line)
			}
			spec.OutputPath = strings.ReplaceAll(tokens[i], pidToken, pid)
		case "&":
			spec.Background = true
		default:
			spec.Args = append(spec.Args, strings.ReplaceAll(token, pidToken, pid))
		}
	}

	if len(spec.Args) == 0 {
		return nil, errors.NewValidationError("command line has no program to run", nil).WithContext("line", line)
	}
	spec.Program = spec.Args[0]

	if err := ValidateSpec(spec); err != nil {
		return nil, err
	}
	return spec, nil
}
