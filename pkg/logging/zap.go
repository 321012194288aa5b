package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/core-tools/hsu-shell/pkg/errors"
)

// ZapConfig configures the file-backed zap logger. Diagnostics never go to
// stdout or stderr: both belong to the interactive session and to children.
type ZapConfig struct {
	FilePath string
	Level    string
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a zap-backed Logger writing to the configured file.
// The returned flush function must be called before the shell exits.
func NewZapLogger(config ZapConfig) (Logger, func(), error) {
	if config.FilePath == "" {
		return nil, nil, errors.NewValidationError("log file path cannot be empty", nil)
	}

	level := zapcore.InfoLevel
	if config.Level != "" {
		if err := level.Set(config.Level); err != nil {
			return nil, nil, errors.NewValidationError("invalid log level", err).WithContext("level", config.Level)
		}
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{config.FilePath}
	zapConfig.ErrorOutputPaths = []string{config.FilePath}

	zl, err := zapConfig.Build()
	if err != nil {
		return nil, nil, errors.NewIOError("failed to open log file", err).WithContext("file_path", config.FilePath)
	}

	flush := func() {
		_ = zl.Sync()
	}
	return &zapLogger{sugar: zl.Sugar()}, flush, nil
}

func (z *zapLogger) LogLevelf(level int, format string, args ...interface{}) {
	switch level {
	case LogLevelDebug:
		z.sugar.Debugf(format, args...)
	case LogLevelInfo:
		z.sugar.Infof(format, args...)
	case LogLevelWarn:
		z.sugar.Warnf(format, args...)
	default:
		z.sugar.Errorf(format, args...)
	}
}

func (z *zapLogger) Debugf(format string, args ...interface{}) {
	z.sugar.Debugf(format, args...)
}

func (z *zapLogger) Infof(format string, args ...interface{}) {
	z.sugar.Infof(format, args...)
}

func (z *zapLogger) Warnf(format string, args ...interface{}) {
	z.sugar.Warnf(format, args...)
}

func (z *zapLogger) Errorf(format string, args ...interface{}) {
	z.sugar.Errorf(format, args...)
}
