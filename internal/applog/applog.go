/*
File    : pepega/internal/applog/applog.go
Package : applog

Package applog is Pepega's diagnostic logger: structured,
leveled logging for the CLI driver, REPL, and server modes — never for
the language's own "chatting" output, which the interpreter writes
directly to its configured io.Writer. Grounded on go-chariot's
logs.ZapLogger (services/go-chariot/logs/logger.go): a thin wrapper
around *zap.Logger exposing the handful of levels the rest of the
module actually calls.
*/
package applog

import "go.uber.org/zap"

// Logger is the subset of *zap.Logger Pepega's driver code calls.
// Keeping it as an interface (rather than passing *zap.Logger around
// directly) lets tests substitute zap.NewNop() without touching call
// sites.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Sync() error
}

type zapLogger struct {
	logger *zap.Logger
}

// New builds a production-style logger (JSON encoding, info level and
// above) for normal CLI/server runs.
func New() Logger {
	logger, _ := zap.NewProduction()
	return &zapLogger{logger: logger}
}

// NewDevelopment builds a console-encoded, debug-level logger — the CLI
// selects it in every run mode when the rc file sets "verbose", for
// when a human is watching the terminal rather than a log collector.
func NewDevelopment() Logger {
	logger, _ := zap.NewDevelopment()
	return &zapLogger{logger: logger}
}

// NewNop discards everything; used by tests and as the fallback when
// repl.New or server.New is given a nil logger.
func NewNop() Logger {
	return &zapLogger{logger: zap.NewNop()}
}

func (l *zapLogger) Debug(msg string, fields ...zap.Field) { l.logger.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...zap.Field)  { l.logger.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...zap.Field)  { l.logger.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...zap.Field) { l.logger.Error(msg, fields...) }
func (l *zapLogger) Sync() error                           { return l.logger.Sync() }
