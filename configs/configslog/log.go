package configslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog its sugared twin for printf-style messages.
// Both are no-op loggers until InitLogger runs.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger builds the global loggers from APP_ENV and LOG_LEVEL.
func InitLogger() {
	var cfg zap.Config
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(lvl)); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic("could not build logger: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
	SLog.Debugf("Logger ready (level: %s)", cfg.Level.String())
}

// SyncLogger flushes any buffered log entries.
func SyncLogger() {
	_ = Log.Sync()
}
