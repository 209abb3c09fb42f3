package logging

import (
	"io"

	"github.com/go-kit/log"
)

// NewJSONLogger creates a new logger which logs JSON-serialized logs directly
// to the given writer, bypassing the process-wide logging backend.
func NewJSONLogger(w io.Writer) *Logger {
	return &Logger{
		logger: log.NewJSONLogger(w),
	}
}

// multiLogger is a logger wrapper that broadcasts each entry to a set
// of underlying loggers.
type multiLogger struct {
	loggers []log.Logger
}

func (l *multiLogger) Log(keyvals ...interface{}) error {
	var firstErr error
	for _, logger := range l.loggers {
		if err := logger.Log(keyvals...); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NewMultiLogger creates a logger that broadcasts each log entry to all
// of the given loggers.
//
// The resulting logger logs at the most permissive level of its
// constituents and carries the module of the first constituent that
// has one set.
func NewMultiLogger(loggers ...*Logger) *Logger {
	baseLoggers := make([]log.Logger, 0, len(loggers))
	lvl := LevelError
	var module string
	for _, l := range loggers {
		baseLoggers = append(baseLoggers, l.logger)
		if l.level < lvl {
			lvl = l.level
		}
		if module == "" {
			module = l.module
		}
	}

	var logger log.Logger = &multiLogger{loggers: baseLoggers}
	if module != "" {
		logger = log.WithPrefix(logger, "module", module)
	}

	return &Logger{
		logger: logger,
		level:  lvl,
		module: module,
	}
}
