// Package logx wraps zerolog behind a small set of leveled helpers.
//
// Development gets a colored console writer at debug level, everything else
// gets plain JSON at info level.
package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog instance.
func Init(isDevelopment bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if isDevelopment {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	log.Logger = logger
}

// Logger returns the global logger.
func Logger() *zerolog.Logger {
	return &log.Logger
}

// Debug records a message at the Debug level with optional key-value fields.
func Debug(msg string, fields ...any) {
	Logger().Debug().Fields(fields).Msg(msg)
}

// Info records a message at the Info level with optional key-value fields.
func Info(msg string, fields ...any) {
	Logger().Info().Fields(fields).Msg(msg)
}

// Warn records a message at the Warn level with optional key-value fields.
func Warn(msg string, fields ...any) {
	Logger().Warn().Fields(fields).Msg(msg)
}

// Error records an error and a message at the Error level.
func Error(err error, msg string, fields ...any) {
	Logger().Error().Err(err).Fields(fields).Msg(msg)
}

// Fatal records an error at the Fatal level and terminates the process.
func Fatal(err error, msg string, fields ...any) {
	Logger().Fatal().Err(err).Fields(fields).Msg(msg)
}
