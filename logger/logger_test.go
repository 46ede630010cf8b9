package logger_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/checkpoint/logger"
)

func TestCheckpointLoggerLevels(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(
		logger.WithLogger(log.New(b, "", 0)),
		logger.WithLevel(logger.LogLevelWarn),
	)

	// Act
	l.Debug("too quiet", nil)
	l.Info("still too quiet", nil)

	// Assert
	require.Zero(t, b.Len())

	// Act
	l.Warn("heard", nil)

	// Assert
	require.Contains(t, b.String(), "[WARN]")
	require.Contains(t, b.String(), "heard")
}

func TestCheckpointLoggerContext(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(log.New(b, "", 0)))

	// Act
	l.Error("oops", &logger.LogContext{Data: map[string]any{"channel": "body"}})

	// Assert
	require.Contains(t, b.String(), "[ERROR]")
	require.Contains(t, b.String(), "log_context:")
	require.Contains(t, b.String(), "channel")
}

func TestNewLogLevel(t *testing.T) {
	tcs := []struct {
		val      string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"whatever", logger.LogLevelUnk},
	}
	for _, tc := range tcs {
		t.Run(tc.val, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}
}
