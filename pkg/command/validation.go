package command

import (
	"github.com/core-tools/hsu-shell/pkg/errors"
)

// ValidateSpec checks the structural invariants of a parsed command spec.
func ValidateSpec(spec *Spec) error {
	if spec == nil {
		return errors.NewValidationError("command spec cannot be nil", nil)
	}
	if spec.Program == "" {
		return errors.NewValidationError("program cannot be empty", nil)
	}
	if len(spec.Args) == 0 || spec.Args[0] != spec.Program {
		return errors.NewValidationError("argument vector must start with the program name", nil).WithContext("program", spec.Program)
	}
	return nil
}
