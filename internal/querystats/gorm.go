package querystats

import (
	"context"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// Logger plugs a Tracker into gorm as its logger. gorm invokes Trace after
// every statement, successful or not, with the start time and the bound
// SQL, which makes it the single funnel all query timing flows through.
type Logger struct {
	tracker *Tracker
	log     *zap.SugaredLogger
}

func NewLogger(tracker *Tracker, log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{
		tracker: tracker,
		log:     log.Sugar(),
	}
}

// LogMode is a no-op: verbosity is owned by the tracker's mode, not by
// gorm's log levels.
func (l *Logger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *Logger) Info(_ context.Context, msg string, args ...interface{}) {
	l.log.Infof(msg, args...)
}

func (l *Logger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.log.Warnf(msg, args...)
}

func (l *Logger) Error(_ context.Context, msg string, args ...interface{}) {
	l.log.Errorf(msg, args...)
}

// Trace records one sample per executed statement. err travels back to the
// caller through gorm itself; it is only observed here, never altered.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	// Bookkeeping is best-effort: a panic in here must never surface on
	// the query path.
	defer func() { _ = recover() }()

	elapsed := time.Since(begin)
	sql, rows := fc()
	l.tracker.Record(Sample{
		Query:        sql,
		RowsAffected: rows,
		Duration:     elapsed,
		Err:          err,
		At:           begin,
	})
}
