package logging

import "github.com/vvka-141/regxml/pkg/regxml"

var (
	_ regxml.Logger = (*NullLogger)(nil)
	_ regxml.Logger = (*ConsoleLogger)(nil)
)

// NullLogger discards all log messages.
// Dictionary builds and codecs fall back to it when no logger is supplied.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}
func (l *NullLogger) Info(format string, args ...interface{})    {}
func (l *NullLogger) Error(format string, args ...interface{})   {}
