package search

import "github.com/rs/zerolog"

// Logger is the leveled diagnostic hook a Search invokes when a run
// starts, when it stops, and when a step fails (delta faults included).
// A Search built by NewBase uses noopLogger unless WithLogger is given,
// so instrumentation is opt-in. The core
// never reaches for a package-level logger of its own.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, err error, fields map[string]any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]any)        {}
func (noopLogger) Info(string, map[string]any)         {}
func (noopLogger) Warn(string, map[string]any)         {}
func (noopLogger) Error(string, error, map[string]any) {}

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger wraps log as a Logger.
func NewZerologLogger(log zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{log: log}
}

func withFields(e *zerolog.Event, fields map[string]any) *zerolog.Event {
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	return e
}

func (z *ZerologLogger) Debug(msg string, fields map[string]any) {
	withFields(z.log.Debug(), fields).Msg(msg)
}

func (z *ZerologLogger) Info(msg string, fields map[string]any) {
	withFields(z.log.Info(), fields).Msg(msg)
}

func (z *ZerologLogger) Warn(msg string, fields map[string]any) {
	withFields(z.log.Warn(), fields).Msg(msg)
}

func (z *ZerologLogger) Error(msg string, err error, fields map[string]any) {
	withFields(z.log.Error().Err(err), fields).Msg(msg)
}
