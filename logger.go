// logger.go
// Package stringsimilarity provides shared utilities for the go_string_similarity package.
package stringsimilarity

import (
	"os"

	"github.com/baditaflorin/go_string_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

// createDefaultLogger creates and returns a default logger instance.
func createDefaultLogger() (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(l.Config{
		Output:      os.Stdout,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
}

// silentLogger is used by package-level convenience calls so library
// consumers do not get log output they never configured.
type silentLogger struct{}

func (silentLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (silentLogger) Info(msg string, keysAndValues ...interface{})  {}
func (silentLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (silentLogger) Error(msg string, keysAndValues ...interface{}) {}
func (silentLogger) Close() error                                   { return nil }

var _ ports.Logger = silentLogger{}
