package chain

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options represent the options for a Chain.
type Options struct {
	Logger logrus.FieldLogger
	Clock  Clock
}

// DefaultOptions returns the default options for a Chain: a standard logger
// and the system clock.
func DefaultOptions() Options {
	return Options{
		Logger: loggerWithFields(logrus.New()),
		Clock:  SystemClock(),
	}
}

// WithClock updates the Clock read by the Chain when appending Blocks.
func (opts Options) WithClock(clock Clock) Options {
	opts.Clock = clock
	return opts
}

// WithLogger updates the logger used by the Chain.
func (opts Options) WithLogger(logger logrus.FieldLogger) Options {
	opts.Logger = logger
	return opts
}

// WithLogLevel updates the log level of the Chain's logger.
func (opts Options) WithLogLevel(level logrus.Level) Options {
	logger := logrus.New()
	logger.SetLevel(level)
	opts.Logger = loggerWithFields(logger)
	return opts
}

// WithLogOutput updates where the Chain's logger will log data to.
func (opts Options) WithLogOutput(output io.Writer) Options {
	logger := logrus.New()
	logger.SetOutput(output)
	opts.Logger = loggerWithFields(logger)
	return opts
}

func loggerWithFields(logger *logrus.Logger) logrus.FieldLogger {
	return logger.
		WithField("lib", "forkchain").
		WithField("pkg", "chain")
}
