package helpers

import (
	"github.com/douhashi/issue-labeler/internal/logger"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewObservableLogger creates a logger that records entries for assertions.
// Fields go through the same sanitizing as the production logger.
func NewObservableLogger(level zapcore.Level) (logger.Logger, *observer.ObservedLogs) {
	core, recorded := observer.New(level)
	return logger.NewWithCore(core), recorded
}

// Messages returns the messages of all recorded entries in order
func Messages(logs *observer.ObservedLogs) []string {
	entries := logs.All()
	messages := make([]string, 0, len(entries))
	for _, entry := range entries {
		messages = append(messages, entry.Message)
	}
	return messages
}
