package configsmail

import (
	"time"

	"portfolio.site/configs/configsenv"
)

// Config holds SMTP settings for owner notifications.
// An empty Host means mail is logged instead of sent.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

func ConfigFromEnv() Config {
	return Config{
		Host:     configsenv.GetEnv("SMTP_HOST", ""),
		Port:     configsenv.GetEnvInt("SMTP_PORT", 587),
		Username: configsenv.GetEnv("SMTP_USERNAME", ""),
		Password: configsenv.GetEnv("SMTP_PASSWORD", ""),
		From:     configsenv.GetEnv("SMTP_FROM", "noreply@portfolio.local"),
		Timeout:  configsenv.GetEnvDuration("SMTP_TIMEOUT", 10*time.Second),
	}
}

// Enabled reports whether an SMTP relay is configured.
func (c Config) Enabled() bool {
	return c.Host != ""
}
