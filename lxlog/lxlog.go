package lxlog

import (
	"fmt"
	"net/url"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	DebugLevelStr   string = "debug"
	InfoLevelStr    string = "info"
	WarningLevelStr string = "warning"
	ErrorLevelStr   string = "error"
)

var registerSinkOnce sync.Once

// Lxlog wraps the process logger handed to gather passes.
type Lxlog struct {
	Logger *zap.SugaredLogger
}

// New builds a named console logger. With logFile empty everything goes to
// stderr only; otherwise the file is written through a size-capped rotator
// as well. Levels are debug, info, warning and error.
func New(name, logLevel, logFile string, dev bool) (*Lxlog, error) {
	l, err := initLogger(logLevel, logFile, dev)
	if err != nil {
		return nil, err
	}

	return &Lxlog{
		Logger: l.Named(name).Sugar(),
	}, nil
}

func initLogger(logLevel, logFile string, dev bool) (*zap.Logger, error) {
	var level zapcore.Level
	switch logLevel {
	case DebugLevelStr:
		level = zap.DebugLevel
	case InfoLevelStr:
		level = zap.InfoLevel
	case WarningLevelStr:
		level = zap.WarnLevel
	case ErrorLevelStr:
		level = zap.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %s", logLevel)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	outputPaths := []string{"stderr"}
	if logFile != "" {
		registerSinkOnce.Do(registerLumberjackSink)
		outputPaths = append(outputPaths, "lumberjack:"+logFile)
	}

	loggerConfig := zap.Config{
		Level:         zap.NewAtomicLevelAt(level),
		Development:   dev,
		Encoding:      "console",
		EncoderConfig: encoderConfig,
		OutputPaths:   outputPaths,
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return logger, nil
}

func registerLumberjackSink() {
	zap.RegisterSink("lumberjack", func(u *url.URL) (zap.Sink, error) {
		filename := u.Path
		if filename == "" {
			filename = u.Opaque
		}
		return lumberjackSink{
			Logger: &lumberjack.Logger{
				Filename:   filename,
				MaxSize:    10, // MB
				MaxBackups: 3,
				MaxAge:     30, // days
				Compress:   true,
			},
		}, nil
	})
}

type lumberjackSink struct {
	*lumberjack.Logger
}

func (lumberjackSink) Sync() error {
	return nil
}
