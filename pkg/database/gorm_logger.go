package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"gorm.io/gorm/logger"
)

// DefaultSlowQueryThreshold is used when Config.SlowQueryThreshold is zero.
const DefaultSlowQueryThreshold = 200 * time.Millisecond

// ledgerLogger sends gorm output to hclog. Statements are logged at debug,
// lookups that find no row at trace, and failures at error.
type ledgerLogger struct {
	log   hclog.Logger
	level logger.LogLevel
	slow  time.Duration
}

// NewGormLogger returns a gorm logger writing to log. Queries slower than
// slow are logged as warnings; zero selects DefaultSlowQueryThreshold.
func NewGormLogger(log hclog.Logger, slow time.Duration) logger.Interface {
	if slow <= 0 {
		slow = DefaultSlowQueryThreshold
	}
	return &ledgerLogger{
		log:   log,
		level: logger.Info,
		slow:  slow,
	}
}

// LogMode sets the log level for GORM queries.
func (l *ledgerLogger) LogMode(level logger.LogLevel) logger.Interface {
	c := *l
	c.level = level
	return &c
}

// Info, Warn and Error receive printf-style messages from gorm.

func (l *ledgerLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.enabled(logger.Info) {
		l.log.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *ledgerLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.enabled(logger.Warn) {
		l.log.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *ledgerLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.enabled(logger.Error) {
		l.log.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *ledgerLogger) enabled(level logger.LogLevel) bool {
	return l.log != nil && l.level >= level
}

// Trace logs one executed statement.
func (l *ledgerLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if !l.enabled(logger.Error) {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []interface{}{"elapsed", elapsed, "rows", rows, "sql", sql}

	switch {
	case errors.Is(err, logger.ErrRecordNotFound):
		l.log.Trace("ledger lookup found no rows", attrs...)
	case err != nil:
		l.log.Error("ledger query failed", append(attrs, "error", err)...)
	case elapsed > l.slow && l.enabled(logger.Warn):
		l.log.Warn("slow ledger query", append(attrs, "threshold", l.slow)...)
	case l.enabled(logger.Info):
		l.log.Debug("ledger query", attrs...)
	}
}
