package logger

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormLogger routes gorm output through the global zerolog logger.
type GormLogger struct {
	LogLevel gormlogger.LogLevel
}

func NewGormLogger(level gormlogger.LogLevel) *GormLogger {
	return &GormLogger{LogLevel: level}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		log.Info().Msgf(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		log.Warn().Msgf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		log.Error().Msgf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	// Record-not-found and unique violations are expected outcomes the callers handle.
	case err != nil && l.LogLevel >= gormlogger.Error &&
		!errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, gorm.ErrDuplicatedKey):
		log.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm_trace")
	case elapsed > slowQueryThreshold && l.LogLevel >= gormlogger.Warn:
		log.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm_trace_slow")
	case l.LogLevel >= gormlogger.Info:
		log.Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("gorm_trace")
	}
}
