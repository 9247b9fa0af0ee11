// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package log

import (
	"os"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = &ZapLogger{}

// ZapLogger is a Logger backed by a zap SugaredLogger.
type ZapLogger struct {
	lg *zap.SugaredLogger
}

// Config is used to configure the ZapLogger.
type Config struct {
	Format string `env:"BTCRPC_LOG_FORMAT" env-default:"console"` // console, logfmt or json
	Level  Level  `env:"BTCRPC_LOG_LEVEL" env-default:"info"`
}

// NewZapLogger creates a ZapLogger writing to stderr and to any extra write syncers.
func NewZapLogger(conf Config, extraWriters ...zapcore.WriteSyncer) Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}

	var encoder zapcore.Encoder
	switch conf.Format {
	case "logfmt":
		encoder = zaplogfmt.NewEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	ws := zapcore.NewMultiWriteSyncer(append(extraWriters, zapcore.Lock(os.Stderr))...)
	core := zapcore.NewCore(encoder, ws, toZapLogLevel(conf.Level))

	// Skip log() and the exported wrapper.
	return &ZapLogger{
		lg: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar(),
	}
}

func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.log(LevelDebug, msg, keysAndValues...)
}

func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues...)
}

func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.log(LevelWarn, msg, keysAndValues...)
}

func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.log(LevelFatal, msg, keysAndValues...)
}

func (l *ZapLogger) log(level Level, msg string, keysAndValues ...any) {
	l.lg.Logw(toZapLogLevel(level), msg, keysAndValues...)
}

func (l *ZapLogger) WithKV(key string, value any) Logger {
	return &ZapLogger{lg: l.lg.With(key, value)}
}

func (l *ZapLogger) WithName(name string) Logger {
	return &ZapLogger{lg: l.lg.Named(name)}
}

func (l *ZapLogger) Name() string {
	return l.lg.Desugar().Name()
}

func toZapLogLevel(logLevel Level) zapcore.Level {
	switch logLevel {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
