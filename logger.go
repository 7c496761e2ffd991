package propcat

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:generate mockgen -source=$GOFILE -package mock_propcat -destination=test/mock/$GOFILE

// Logger receives catalog load failures. A nil Logger drops them.
type Logger interface {
	ErrorEnabled() bool
	Error(msg string, err error)
}

type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger adapts a slog logger. A nil logger uses slog.Default().
func NewSlogLogger(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

func (l *slogLogger) ErrorEnabled() bool {
	return l.logger.Enabled(context.Background(), slog.LevelError)
}

func (l *slogLogger) Error(msg string, err error) {
	l.logger.Error(msg, "error", err)
}

type zapLogger struct {
	logger *zap.Logger
}

// NewZapLogger adapts a zap logger. A nil logger is replaced by zap.NewNop().
func NewZapLogger(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger}
}

func (l *zapLogger) ErrorEnabled() bool {
	return l.logger.Core().Enabled(zapcore.ErrorLevel)
}

func (l *zapLogger) Error(msg string, err error) {
	l.logger.Error(msg, zap.Error(err))
}

func logLoadError(logger Logger, err error) {
	if logger == nil || !logger.ErrorEnabled() {
		return
	}
	logger.Error(err.Error(), err)
}
