package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// ParseLevel acepta debug|info|warn|warning|error. Cualquier otra cosa es info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

type Options struct {
	Level  zapcore.Level
	Format Format
	App    string
}

// New arma un *zap.Logger. FormatText usa el encoder de consola (dev), FormatJSON el de producción.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Format == FormatJSON {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(opts.Level)
	cfg.DisableStacktrace = opts.Level > zapcore.DebugLevel

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if app := strings.TrimSpace(opts.App); app != "" {
		log = log.With(zap.String("app", app))
	}
	return log, nil
}
