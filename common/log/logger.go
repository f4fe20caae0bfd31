// Package log defines the unified logging interface used across the codec's
// ambient layers (config, storage, the demo command). The core encoding
// package itself stays pure and never logs; this package exists for the
// repository/CLI layers wrapped around it.
package log

import (
	"log"
	"os"
	"sync"

	"github.com/turtacn/dingocodec/common/constants"
	"github.com/turtacn/dingocodec/common/errors"
	"github.com/turtacn/dingocodec/common/types/enum"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the interface every caller logs through, so the concrete Zap
// wiring stays swappable and mockable in tests.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
	SetLevel(level enum.LogLevel)
}

type codecLogger struct {
	zapLogger *zap.Logger
	atom      zap.AtomicLevel
	mu        sync.RWMutex
}

var (
	globalLogger *codecLogger
	once         sync.Once
)

// InitLogger builds the global logger: a colored console core always on,
// plus a rotating JSON file core when logFilePath is non-empty. Safe to call
// more than once; only the first call takes effect.
func InitLogger(logFilePath string, level string) {
	once.Do(func() {
		parsedLevel, err := enum.ParseLogLevel(level)
		if err != nil {
			log.Printf("invalid log level %q, falling back to %s", level, constants.DefaultLogLevel)
			parsedLevel, _ = enum.ParseLogLevel(constants.DefaultLogLevel)
		}
		atom := zap.NewAtomicLevelAt(toZapLevel(parsedLevel))

		zapLogger := zap.New(zapcore.NewTee(buildCores(atom, logFilePath)...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
		globalLogger = &codecLogger{zapLogger: zapLogger, atom: atom}
		zap.ReplaceGlobals(zapLogger)
	})
}

// buildCores assembles the console core (always present) and, when
// logFilePath is set, a lumberjack-backed rotating file core alongside it.
func buildCores(atom zap.AtomicLevel, logFilePath string) []zapcore.Core {
	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(os.Stdout), atom),
	}

	if logFilePath == "" {
		return cores
	}

	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    constants.LogFileMaxSizeMB,
		MaxBackups: constants.LogFileMaxBackups,
		MaxAge:     constants.LogFileMaxAgeDays,
		Compress:   true,
	})
	return append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), fileWriter, atom))
}

// GetLogger returns the global logger, or a discard logger if InitLogger was
// never called, so call sites never need a nil check.
func GetLogger() Logger {
	if globalLogger == nil {
		return noOpLogger{}
	}
	return globalLogger
}

func toZapLevel(level enum.LogLevel) zapcore.Level {
	switch level {
	case enum.LogLevelDebug:
		return zapcore.DebugLevel
	case enum.LogLevelInfo:
		return zapcore.InfoLevel
	case enum.LogLevelWarn:
		return zapcore.WarnLevel
	case enum.LogLevelError:
		return zapcore.ErrorLevel
	case enum.LogLevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *codecLogger) Debug(msg string, fields ...zap.Field) { l.zapLogger.Debug(msg, fields...) }
func (l *codecLogger) Info(msg string, fields ...zap.Field)  { l.zapLogger.Info(msg, fields...) }
func (l *codecLogger) Warn(msg string, fields ...zap.Field)  { l.zapLogger.Warn(msg, fields...) }
func (l *codecLogger) Error(msg string, fields ...zap.Field) { l.zapLogger.Error(msg, fields...) }
func (l *codecLogger) Fatal(msg string, fields ...zap.Field) { l.zapLogger.Fatal(msg, fields...) }

func (l *codecLogger) With(fields ...zap.Field) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &codecLogger{zapLogger: l.zapLogger.With(fields...), atom: l.atom}
}

func (l *codecLogger) SetLevel(level enum.LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.atom.SetLevel(toZapLevel(level))
}

// LogCodecError logs err at a severity chosen from the codec's own error
// taxonomy: framing mismatches the record codec already treats as
// recoverable (PrefixMismatch, SchemaTooNew) are logged at Warn, everything
// else (programmer error or data corruption) at Error.
func LogCodecError(logger Logger, msg string, err error, fields ...zap.Field) {
	if errors.IsAny(err, errors.ErrPrefixMismatch, errors.ErrSchemaTooNew) {
		logger.Warn(msg, append(fields, zap.Error(err))...)
		return
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
}

type noOpLogger struct{}

func (noOpLogger) Debug(string, ...zap.Field)      {}
func (noOpLogger) Info(string, ...zap.Field)       {}
func (noOpLogger) Warn(string, ...zap.Field)       {}
func (noOpLogger) Error(string, ...zap.Field)      {}
func (noOpLogger) Fatal(string, ...zap.Field)      { os.Exit(1) }
func (l noOpLogger) With(...zap.Field) Logger      { return l }
func (noOpLogger) SetLevel(level enum.LogLevel)    {}
