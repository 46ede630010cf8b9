package logger

import "log"

// A LoggerOptFn is a functional option configuring a CheckpointLogger when constructing a new one.
type LoggerOptFn func(*CheckpointLogger)

// WithEnv sets the environment CheckpointLogger is operating in.
func WithEnv(env string) func(*CheckpointLogger) {
	return func(l *CheckpointLogger) {
		l.env = env
	}
}

// WithLevel sets the log level CheckpointLogger uses.
func WithLevel(level LogLevel) func(*CheckpointLogger) {
	return func(l *CheckpointLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger CheckpointLogger uses.
func WithLogger(log *log.Logger) func(*CheckpointLogger) {
	return func(l *CheckpointLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*CheckpointLogger) {
	return func(l *CheckpointLogger) {
		l.skip = skip
	}
}
