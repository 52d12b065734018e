package database

import (
	"fmt"
	"time"

	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/env"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ConnectorConfig struct {
	Host     string
	Port     string
	Username string
	DbName   string
	Password string
	SslMode  string
}

func LoadConfigFromEnv(log zerolog.Logger) ConnectorConfig {
	return ConnectorConfig{
		Host:     env.GetVariableOrDefault(log, "POSTGRES_HOST", ""),
		Port:     env.GetVariableOrDefault(log, "POSTGRES_PORT", "5432"),
		Username: env.GetVariableOrDefault(log, "POSTGRES_USER", ""),
		DbName:   env.GetVariableOrDefault(log, "POSTGRES_DBNAME", "iptrace"),
		Password: env.GetVariableOrDefault(log, "POSTGRES_PASSWORD", ""),
		SslMode:  env.GetVariableOrDefault(log, "POSTGRES_SSLMODE", "disable"),
	}
}

func (cfg ConnectorConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s password=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.DbName, cfg.SslMode, cfg.Password)
}

type ConnectorFunc func() (*gorm.DB, zerolog.Logger, error)

// NewConnector picks PostgreSQL when a host is configured and falls back to an
// in-memory SQLite database otherwise.
func NewConnector(log zerolog.Logger, cfg ConnectorConfig) ConnectorFunc {
	if cfg.Host == "" {
		log.Warn().Msg("no database host configured, invocations will be kept in memory")
		return NewSQLiteConnector(log)
	}
	return NewPostgreSQLConnector(log, cfg)
}

func NewSQLiteConnector(log zerolog.Logger) ConnectorFunc {
	return func() (*gorm.DB, zerolog.Logger, error) {
		db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err == nil {
			sqldb, _ := db.DB()
			sqldb.SetMaxOpenConns(1)
		}

		return db, log, err
	}
}

func NewPostgreSQLConnector(log zerolog.Logger, cfg ConnectorConfig) ConnectorFunc {
	return func() (*gorm.DB, zerolog.Logger, error) {
		sublogger := log.With().Str("host", cfg.Host).Str("database", cfg.DbName).Logger()
		sublogger.Info().Msg("connecting to database host")

		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.New(
				&sublogger,
				logger.Config{
					SlowThreshold:             time.Second,
					LogLevel:                  logger.Warn,
					IgnoreRecordNotFoundError: true,
					Colorful:                  false,
				},
			),
		})
		if err != nil {
			return nil, sublogger, fmt.Errorf("failed to connect to database: %w", err)
		}

		return db, sublogger, nil
	}
}
