// Package log holds the command-line logger. Library packages log through
// zap.L(), which stays a no-op until Init installs this logger globally.
package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

// Init builds a console logger writing to stderr. Debug enables debug level
// and caller annotations; otherwise only warnings and errors are shown so
// reports on stdout stay clean.
func Init(debug bool) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.DisableCaller = true
	}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	// zap.L() in library code must not carry the wrapper's caller skip.
	zap.ReplaceGlobals(zapLogger.WithOptions(zap.AddCallerSkip(-1)))
	log = zapLogger.Sugar()
	return nil
}

// Logger returns the sugared logger, falling back to a production logger if
// Init was not called.
func Logger() *zap.SugaredLogger {
	if log == nil {
		zapLogger, _ := zap.NewProduction()
		log = zapLogger.Sugar()
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Debugw(msg string, keysAndValues ...interface{}) {
	Logger().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	Logger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	Logger().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	Logger().Errorw(msg, keysAndValues...)
}

// Fatalf logs at error level and exits. Used by commands on unrecoverable
// input errors.
func Fatalf(template string, args ...interface{}) {
	Logger().Errorf(template, args...)
	Sync()
	os.Exit(1)
}
