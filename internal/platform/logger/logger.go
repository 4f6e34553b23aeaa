package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var sugar *zap.SugaredLogger

func init() {
	l, err := zap.NewDevelopment(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	sugar = l.Sugar()
}

// Setup replaces the package logger. mode "production" emits JSON; anything
// else uses the development console encoder. When filename is set, logs are
// also written there with size-based rotation.
func Setup(mode, filename string) error {
	var zapConfig zap.Config
	if mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var l *zap.Logger
	if filename != "" {
		rotator := &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotator),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zapConfig.EncoderConfig),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		l = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		l, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
	}

	sugar = l.Sugar()
	return nil
}

// Use swaps in an existing zap logger, mostly for tests.
func Use(l *zap.Logger) {
	sugar = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

func Sync() {
	_ = sugar.Sync()
}

func Info(msg string, v ...interface{}) {
	sugar.Infof(msg, v...)
}

func Warn(msg string, v ...interface{}) {
	sugar.Warnf(msg, v...)
}

// Error logs msg (formatted with v) and attaches err as a structured field.
func Error(msg string, err error, v ...interface{}) {
	if len(v) > 0 {
		msg = fmt.Sprintf(msg, v...)
	}
	if err != nil {
		sugar.Errorw(msg, "error", err)
		return
	}
	sugar.Error(msg)
}
