package configsenv

import (
	"os"
	"strconv"
	"strings"
	"time"

	"portfolio.site/configs/configslog"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env (or files) into the process environment.
// Variables already set in the environment win. It runs before the logger
// exists, so a missing file is returned for the caller to log once logging is up.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

// GetEnv returns the trimmed value of key or def when unset.
func GetEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func GetEnvInt(key string, def int) int {
	v := GetEnv(key, "")
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		configslog.SLog.Warnf("Invalid integer for %s=%q, using %d", key, v, def)
		return def
	}
	return i
}

func GetEnvBool(key string, def bool) bool {
	v := GetEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		configslog.SLog.Warnf("Invalid boolean for %s=%q, using %t", key, v, def)
		return def
	}
	return b
}

// GetEnvDuration accepts Go duration strings ("10s") or plain seconds ("10").
func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := GetEnv(key, "")
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	configslog.SLog.Warnf("Invalid duration for %s=%q, using %s", key, v, def)
	return def
}

// IsProduction reports whether APP_ENV is "production".
func IsProduction() bool {
	return strings.EqualFold(GetEnv("APP_ENV", "development"), "production")
}
