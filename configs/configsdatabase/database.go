package configsdatabase

import (
	"fmt"
	"strings"
	"time"

	"portfolio.site/configs/configsenv"
	"portfolio.site/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var db *gorm.DB

// Config describes how to open the database.
type Config struct {
	Driver          string
	DSN             string // postgres DSN or sqlite file path
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogSQL          bool
}

// ConfigFromEnv reads DB_* variables. Without DB_DRIVER the site runs on a
// local sqlite file, the same default the site has always had for development.
func ConfigFromEnv() Config {
	driver := strings.ToLower(configsenv.GetEnv("DB_DRIVER", DriverSQLite))
	cfg := Config{
		Driver:          driver,
		MaxOpenConns:    configsenv.GetEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    configsenv.GetEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: configsenv.GetEnvDuration("DB_CONN_MAX_LIFETIME", 10*time.Minute),
		LogSQL:          configsenv.GetEnvBool("DB_LOG_SQL", false),
	}

	switch driver {
	case DriverPostgres:
		cfg.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
			configsenv.GetEnv("DB_HOST", "localhost"),
			configsenv.GetEnv("DB_PORT", "5432"),
			configsenv.GetEnv("DB_USER", "postgres"),
			configsenv.GetEnv("DB_PASSWORD", ""),
			configsenv.GetEnv("DB_NAME", "portfolio"),
			configsenv.GetEnv("DB_SSLMODE", "disable"),
			configsenv.GetEnv("DB_TIMEZONE", "UTC"),
		)
	default:
		cfg.DSN = configsenv.GetEnv("DB_PATH", "portfolio.db") + "?_foreign_keys=on"
	}
	return cfg
}

// Open returns a configured *gorm.DB without touching the package global.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	logLevel := logger.Silent
	if cfg.LogSQL {
		logLevel = logger.Info
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return conn, nil
}

// InitDB opens the process-wide connection from the environment. Failure is fatal.
func InitDB() {
	cfg := ConfigFromEnv()
	conn, err := Open(cfg)
	if err != nil {
		configslog.Log.Fatal("Could not connect to database", zap.String("driver", cfg.Driver), zap.Error(err))
	}
	db = conn
	configslog.SLog.Infof("Database connection established (%s)", cfg.Driver)
}

// GetDB returns the connection opened by InitDB.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB called before InitDB")
	}
	return db
}

func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Could not get sql.DB for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Error closing database connection", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database connection closed")
}
