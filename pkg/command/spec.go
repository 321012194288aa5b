package command

// Spec is the parsed, validated representation of one command line. It is
// built once per input line, consumed once by the launcher, and discarded.
type Spec struct {
	// Program is the command name, always equal to Args[0].
	Program string

	// Args is the full argument vector, program included.
	Args []string

	// InputPath and OutputPath are redirection targets; empty means the
	// stream was not redirected on the command line.
	InputPath  string
	OutputPath string

	// Background requests dispatch without waiting. The supervisor may
	// override it when the shell is in foreground-only mode.
	Background bool
}
