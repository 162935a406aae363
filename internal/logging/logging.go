// Package logging wraps zap with a per-run correlation ID, so every line
// emitted during one `acctmatch account <stem>` or `acctmatch contact
// <stem>` invocation can be grepped out of a shared log stream.
package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger is a zap.SugaredLogger pre-tagged with a run_id field.
type Logger struct {
	*zap.SugaredLogger
	RunID string
}

// New builds a production zap logger (JSON, info level) tagged with a
// fresh run ID, and a component field identifying the subcommand.
func New(component string) (*Logger, error) {
	base, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	sugar := base.With(zap.String("run_id", runID), zap.String("component", component)).Sugar()
	return &Logger{SugaredLogger: sugar, RunID: runID}, nil
}

// Warnf implements pipeline.Logger.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.SugaredLogger.Warnf(format, args...)
}
