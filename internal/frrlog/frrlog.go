// Package frrlog wraps a zerolog.Logger with the three named levels
// spec.md §6 requires of the logging sink: INFO, DEBUG and DEV. DEV is
// a development-only level noisier than DEBUG, mapped onto zerolog's
// trace level rather than inventing a custom one.
package frrlog

import "github.com/rs/zerolog"

// Logger is a thin, leveled wrapper over zerolog.Logger. The zero value
// is not usable; build one with New.
type Logger struct {
	z zerolog.Logger
}

// New wraps z. Debug builds typically pass zerolog.New(os.Stderr).With().Timestamp().Logger();
// production builds can swap the writer or level without touching callers.
func New(z zerolog.Logger) Logger {
	return Logger{z: z}
}

// Info logs an operator-facing message.
func (l Logger) Info(msg string) {
	l.z.Info().Msg(msg)
}

// Infof logs a formatted operator-facing message.
func (l Logger) Infof(format string, args ...interface{}) {
	l.z.Info().Msgf(format, args...)
}

// Debug logs a message useful when diagnosing a specific run.
func (l Logger) Debug(msg string) {
	l.z.Debug().Msg(msg)
}

// Debugf logs a formatted diagnostic message.
func (l Logger) Debugf(format string, args ...interface{}) {
	l.z.Debug().Msgf(format, args...)
}

// Dev logs a message only relevant to someone working on this module
// itself — per-candidate evaluation traces, intermediate set contents.
func (l Logger) Dev(msg string) {
	l.z.Trace().Msg(msg)
}

// Devf logs a formatted developer-facing message.
func (l Logger) Devf(format string, args ...interface{}) {
	l.z.Trace().Msgf(format, args...)
}

// Zerolog returns the underlying zerolog.Logger, for packages (allpaths,
// spf, lfa, rlfa) that take one directly rather than this wrapper.
func (l Logger) Zerolog() zerolog.Logger {
	return l.z
}
