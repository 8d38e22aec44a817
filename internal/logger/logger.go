package logger

import (
	"io"
	"os"
	"time"

	"github.com/lshigami/Gabarito/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

// Init installs a console logger on the global zerolog instance.
// Call it before anything else logs.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(consoleWriter()).With().Timestamp().Caller().Logger()
}

// Configure applies the configured level and, when a log file is set, tees
// every entry into a rotating JSON file.
func Configure(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || cfg.Logging.Level == "" {
		log.Warn().Str("level", cfg.Logging.Level).Msg("Unknown log level, falling back to info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = consoleWriter()
	if cfg.Logging.File != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   cfg.Logging.File,
			MaxSize:    cfg.Logging.MaxSize,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAge:     cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		})
	}
	log.Logger = zerolog.New(out).With().Timestamp().Caller().Logger()
	log.Info().Str("level", level.String()).Str("file", cfg.Logging.File).Msg("Logger configured")
}
