package logging

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides structured logging for editor operations.
type Logger struct {
	zap *zap.Logger
}

// NewLogger creates a Logger that appends JSON entries to logPath. An
// empty path disables logging. Development mode switches to the readable
// encoder config.
func NewLogger(logPath string, development bool) (*Logger, error) {
	if logPath == "" {
		return &Logger{zap: zap.NewNop()}, nil
	}

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logFile),
		zapcore.InfoLevel,
	)

	return &Logger{zap: zap.New(core)}, nil
}

// Nop returns a logger that discards everything, for callers that want
// logging to be unconditional in the code path.
func Nop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// Close syncs the logger; call on shutdown.
func (l *Logger) Close() error {
	return l.zap.Sync()
}

// CommandExecuted logs one editor command with its outcome.
func (l *Logger) CommandExecuted(command, path string, duration time.Duration, err error) {
	if err != nil {
		l.zap.Info("command executed",
			zap.String("command", command),
			zap.String("path", path),
			zap.Duration("duration", duration),
			zap.Bool("success", false),
			zap.Error(err),
		)
		return
	}
	l.zap.Info("command executed",
		zap.String("command", command),
		zap.String("path", path),
		zap.Duration("duration", duration),
		zap.Bool("success", true),
	)
}

// LintExecuted logs one lint pass over an edit.
func (l *Logger) LintExecuted(path string, findings int, duration time.Duration) {
	l.zap.Info("lint executed",
		zap.String("path", path),
		zap.Int("findings", findings),
		zap.Duration("duration", duration),
	)
}

// SessionStarted logs the start of a command session.
func (l *Logger) SessionStarted(sessionID, mode string) {
	l.zap.Info("session started",
		zap.String("session_id", sessionID),
		zap.String("mode", mode),
	)
}

// SessionFinished logs the end of a command session.
func (l *Logger) SessionFinished(sessionID string, commands int, duration time.Duration) {
	l.zap.Info("session finished",
		zap.String("session_id", sessionID),
		zap.Int("commands", commands),
		zap.Duration("duration", duration),
	)
}

// Error logs an error.
func (l *Logger) Error(msg string, err error) {
	l.zap.Error(msg, zap.Error(err))
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}
