package logutil

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig configures the global logger.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:   zapcore.InfoLevel.String(),
		Format:  "console",
		MaxSize: 512,
	}
}

var globalLogger atomic.Value

func init() {
	globalLogger.Store(zap.NewNop())
}

// GetGlobalLogger returns the logger installed by SetupLogger, or a no-op
// logger if none was installed.
func GetGlobalLogger() *zap.Logger {
	return globalLogger.Load().(*zap.Logger)
}

// ReplaceGlobalLogger installs logger and returns the previous one.
func ReplaceGlobalLogger(logger *zap.Logger) *zap.Logger {
	old := GetGlobalLogger()
	globalLogger.Store(logger)
	return old
}

// SetupLogger builds a logger from cfg and installs it globally. An
// unsupported format panics.
func SetupLogger(cfg *LogConfig) *zap.Logger {
	core := zapcore.NewCore(cfg.getEncoder(), cfg.getSyncer(), cfg.getLevel())
	logger := zap.New(core, cfg.getOptions()...)
	ReplaceGlobalLogger(logger)
	return logger
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		panic(fmt.Sprintf("unsupported log level: %s", cfg.Level))
	}
	return level
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	return getLoggerEncoder(cfg.Format)
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stdout)
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "name",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	switch format {
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig)
	case "console", "":
		return zapcore.NewConsoleEncoder(encoderConfig)
	default:
		panic(fmt.Sprintf("unsupported log format: %s", format))
	}
}
