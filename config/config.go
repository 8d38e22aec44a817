package config

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Grading  Grading
	Ingest   Ingest
	Logging  Logging
}

type Server struct {
	Port string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file, ":memory:" for an in-process store
}

type Auth struct {
	JWTSecret string
}

// Grading holds the deployment constraints applied to answer strings.
type Grading struct {
	QuestionCount int     // N; 0 disables the length check
	DefaultWeight float64 // used when an answer key is created without a weight
}

type Ingest struct {
	BatchConcurrency int
}

type Logging struct {
	Level      string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_NAME", "gabarito")
	v.SetDefault("DATABASE_PATH", "gabarito.db")

	v.SetDefault("JWT_SECRET", "change-me")

	v.SetDefault("GRADING_QUESTION_COUNT", 0)
	v.SetDefault("GRADING_DEFAULT_WEIGHT", 0.50)

	v.SetDefault("INGEST_BATCH_CONCURRENCY", 4)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE", 10) // megabytes
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE", 7) // days
	v.SetDefault("LOG_COMPRESS", true)
}

func NewConfig() (*Config, error) {
	return Load(".")
}

// Load reads <dir>/.env when present, then lets the environment override it.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn().Err(err).Msg("Error reading config file")
		}
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.Path = v.GetString("DATABASE_PATH")

	config.Auth.JWTSecret = v.GetString("JWT_SECRET")

	config.Grading.QuestionCount = v.GetInt("GRADING_QUESTION_COUNT")
	config.Grading.DefaultWeight = v.GetFloat64("GRADING_DEFAULT_WEIGHT")

	config.Ingest.BatchConcurrency = v.GetInt("INGEST_BATCH_CONCURRENCY")

	config.Logging.Level = v.GetString("LOG_LEVEL")
	config.Logging.File = v.GetString("LOG_FILE")
	config.Logging.MaxSize = v.GetInt("LOG_MAX_SIZE")
	config.Logging.MaxBackups = v.GetInt("LOG_MAX_BACKUPS")
	config.Logging.MaxAge = v.GetInt("LOG_MAX_AGE")
	config.Logging.Compress = v.GetBool("LOG_COMPRESS")

	if config.Grading.QuestionCount < 0 {
		return nil, errors.New("GRADING_QUESTION_COUNT must not be negative")
	}
	if config.Grading.DefaultWeight <= 0 {
		return nil, errors.New("GRADING_DEFAULT_WEIGHT must be positive")
	}
	if config.Ingest.BatchConcurrency < 1 {
		config.Ingest.BatchConcurrency = 1
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Int("questionCount", config.Grading.QuestionCount).
		Msg("Config loaded")
	return &config, nil
}
