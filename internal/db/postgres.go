package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charity-app-go/internal/config"
	"charity-app-go/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
	defaultSlowQuery       = 200 * time.Millisecond
)

func NewPostgres(cfg config.DBConfig, log logger.Logger) (*gorm.DB, error) {
	if cfg.DSN != "" {
		log.Info("db: connecting using DSN")
	} else {
		log.Info("db: connecting to postgres", "host", cfg.Host, "port", cfg.Port, "dbname", cfg.Name, "sslmode", cfg.SSLMode)
	}

	slow := cfg.SlowQuery
	if slow == 0 {
		slow = defaultSlowQuery
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: &queryLogger{log: log, slow: slow},
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = defaultMaxIdleConns
	}
	connMaxLifetime := cfg.ConnMaxLifetime
	if connMaxLifetime == 0 {
		connMaxLifetime = defaultConnMaxLifetime
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	log.Info("db: connected")
	return gormDB, nil
}

// queryLogger adapts gorm's logger to pkg/logger. Only slow queries and
// unexpected errors are reported; record-not-found is a normal outcome here.
type queryLogger struct {
	log  logger.Logger
	slow time.Duration
}

func (l *queryLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *queryLogger) Info(_ context.Context, msg string, args ...any) {
	l.log.Debug("db: "+msg, "args", args)
}

func (l *queryLogger) Warn(_ context.Context, msg string, args ...any) {
	l.log.Warn("db: "+msg, "args", args)
}

func (l *queryLogger) Error(_ context.Context, msg string, args ...any) {
	l.log.Error("db: "+msg, "args", args)
}

func (l *queryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Debug("db: query failed", "err", err, "elapsed", elapsed, "rows", rows, "sql", sql)
	case elapsed > l.slow:
		sql, rows := fc()
		l.log.Warn("db: slow query", "elapsed", elapsed, "rows", rows, "sql", sql)
	}
}
