package logging

const (
	LogLevelDebug = 0
	LogLevelInfo  = 1
	LogLevelWarn  = 2
	LogLevelError = 3
)

// Logger is the diagnostic logging interface used across the shell. It is
// deliberately separate from the interactive output stream: the prompt and
// command announcements go to stdout, diagnostics go here.
type Logger interface {
	LogLevelf(level int, format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopLogger struct{}

// NewNopLogger returns a logger that discards everything. It is the default
// when no log file is configured.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) LogLevelf(level int, format string, args ...interface{}) {}
func (nopLogger) Debugf(format string, args ...interface{})               {}
func (nopLogger) Infof(format string, args ...interface{})                {}
func (nopLogger) Warnf(format string, args ...interface{})                {}
func (nopLogger) Errorf(format string, args ...interface{})               {}

type prefixLogger struct {
	prefix string
	inner  Logger
}

// NewPrefixLogger returns a logger that prepends a fixed prefix to every
// message before delegating to inner. Used to tag per-component diagnostics.
func NewPrefixLogger(prefix string, inner Logger) Logger {
	return &prefixLogger{
		prefix: prefix,
		inner:  inner,
	}
}

func (l *prefixLogger) LogLevelf(level int, format string, args ...interface{}) {
	l.inner.LogLevelf(level, l.prefix+format, args...)
}

func (l *prefixLogger) Debugf(format string, args ...interface{}) {
	l.inner.Debugf(l.prefix+format, args...)
}

func (l *prefixLogger) Infof(format string, args ...interface{}) {
	l.inner.Infof(l.prefix+format, args...)
}

func (l *prefixLogger) Warnf(format string, args ...interface{}) {
	l.inner.Warnf(l.prefix+format, args...)
}

func (l *prefixLogger) Errorf(format string, args ...interface{}) {
	l.inner.Errorf(l.prefix+format, args...)
}
