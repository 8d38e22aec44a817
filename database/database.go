package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/Gabarito/config"
	"github.com/lshigami/Gabarito/internal/logger"
	"github.com/lshigami/Gabarito/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewDatabase opens the configured store. Unique violations surface as
// gorm.ErrDuplicatedKey so callers can treat them as a lost race.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	return Open(cfg.Database, gormlogger.Warn)
}

func Open(cfg config.Database, level gormlogger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres, "":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name,
		)
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		// sqlite allows a single writer; an in-memory store also lives and dies with its only connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info().Str("driver", cfg.Driver).Msg("Database connected")
	return db, nil
}

// Migrate creates or updates the schema, including the participant identity
// index the reconciliation upsert relies on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.AnswerKey{},
		&model.Participant{},
		&model.Leitura{},
	)
}
