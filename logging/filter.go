package logging

import (
	"github.com/go-kit/log"
)

// filterLogger is a logger wrapper that drops specific keys from every
// log entry.
type filterLogger struct {
	logger      log.Logger
	excludeKeys map[interface{}]struct{}
}

func (l *filterLogger) Log(keyvals ...interface{}) error {
	kept := make([]interface{}, 0, len(keyvals))
	for i := 0; i < len(keyvals); i += 2 {
		if _, exclude := l.excludeKeys[keyvals[i]]; exclude {
			continue
		}
		kept = append(kept, keyvals[i])
		if i+1 < len(keyvals) {
			kept = append(kept, keyvals[i+1])
		}
	}

	return l.logger.Log(kept...)
}

// NewFilterLogger creates a logger wrapper that drops the given keys
// from every entry logged through it.
func NewFilterLogger(base *Logger, excludeKeys map[interface{}]struct{}) *Logger {
	return &Logger{
		logger: &filterLogger{
			logger:      base.logger,
			excludeKeys: excludeKeys,
		},
		level:  base.level,
		module: base.module,
	}
}
