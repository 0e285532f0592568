package querystats

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	errwrap "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/theobroma-digital/geo-api/entity"
)

// DefaultSlowThreshold marks queries slower than 500ms as slow unless
// overridden via SetThreshold.
const DefaultSlowThreshold = 500 * time.Millisecond

const (
	ringCapacity = 50
	recentLimit  = 10

	slowLogQueryLen     = 200
	detailedLogQueryLen = 100
)

// Mode controls how much query logging the tracker emits.
type Mode int32

const (
	// ModeNormal logs only slow queries.
	ModeNormal Mode = iota
	// ModeDetailed additionally logs every completed query.
	ModeDetailed
)

// Sample is one completed query execution. Err is non-nil for failed
// executions, which are timed and recorded like any other.
type Sample struct {
	Query        string
	RowsAffected int64
	Duration     time.Duration
	Err          error
	At           time.Time
}

// Tracker accumulates query statistics for the whole process. All mutation
// happens under one mutex; only the bookkeeping is synchronized, never the
// query execution itself. Nothing is persisted, a restart starts from zero.
type Tracker struct {
	log  *zap.Logger
	mode atomic.Int32

	mu        sync.Mutex
	threshold time.Duration
	total     int64
	sum       time.Duration
	min       time.Duration
	max       time.Duration
	slowCount int64
	ring      [ringCapacity]entity.SlowQuery
	ringHead  int
	ringLen   int
}

func NewTracker(log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		log:       log,
		threshold: DefaultSlowThreshold,
	}
}

// Record folds a completed query into the running statistics and emits a
// log line according to the current mode. The mode is read here, at
// completion time, so a toggle applies to the very next query.
func (t *Tracker) Record(s Sample) {
	if s.At.IsZero() {
		s.At = time.Now()
	}

	t.mu.Lock()
	t.total++
	t.sum += s.Duration
	if t.total == 1 || s.Duration < t.min {
		t.min = s.Duration
	}
	if s.Duration > t.max {
		t.max = s.Duration
	}
	slow := s.Duration > t.threshold
	if slow {
		t.slowCount++
		t.push(entity.SlowQuery{
			Query:         s.Query,
			RowsAffected:  s.RowsAffected,
			ExecutionTime: roundSeconds(s.Duration),
			Timestamp:     s.At,
		})
	}
	t.mu.Unlock()

	t.logSample(s, slow)
}

// push inserts at the logical tail, evicting the oldest entry when the
// ring is full. Caller holds t.mu.
func (t *Tracker) push(q entity.SlowQuery) {
	if t.ringLen < ringCapacity {
		t.ring[(t.ringHead+t.ringLen)%ringCapacity] = q
		t.ringLen++
		return
	}
	t.ring[t.ringHead] = q
	t.ringHead = (t.ringHead + 1) % ringCapacity
}

func (t *Tracker) logSample(s Sample, slow bool) {
	if slow {
		t.log.Warn("slow query",
			zap.Duration("duration", s.Duration),
			zap.String("query", truncateQuery(s.Query, slowLogQueryLen)),
			zap.Int64("rows", s.RowsAffected),
			zap.Error(s.Err),
		)
	}
	if t.Mode() == ModeDetailed {
		t.log.Info("query",
			zap.Duration("duration", s.Duration),
			zap.String("query", truncateQuery(s.Query, detailedLogQueryLen)),
			zap.Int64("rows", s.RowsAffected),
			zap.Error(s.Err),
		)
	}
}

// Snapshot copies the current statistics out under the lock. The returned
// value shares no state with the tracker; averages resolve to 0 when no
// queries have been recorded yet.
func (t *Tracker) Snapshot() entity.QueryPerformance {
	t.mu.Lock()
	defer t.mu.Unlock()

	perf := entity.QueryPerformance{
		TotalQueries:      t.total,
		SlowQueriesCount:  t.slowCount,
		RecentSlowQueries: make([]entity.SlowQuery, 0, recentLimit),
	}
	if t.total > 0 {
		perf.AvgQueryTime = round4(t.sum.Seconds() / float64(t.total))
		perf.MaxQueryTime = roundSeconds(t.max)
		perf.MinQueryTime = roundSeconds(t.min)
	}

	n := t.ringLen
	if n > recentLimit {
		n = recentLimit
	}
	for i := t.ringLen - n; i < t.ringLen; i++ {
		perf.RecentSlowQueries = append(perf.RecentSlowQueries, t.ring[(t.ringHead+i)%ringCapacity])
	}
	return perf
}

// Reset restores all counters and empties the ring. The threshold and the
// verbosity mode are left untouched.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total = 0
	t.sum = 0
	t.min = 0
	t.max = 0
	t.slowCount = 0
	t.ringHead = 0
	t.ringLen = 0
}

// SetThreshold changes the slow-query threshold for future classifications
// only. Non-positive values are rejected and the previous threshold stays
// in effect.
func (t *Tracker) SetThreshold(d time.Duration) error {
	if d <= 0 {
		return errwrap.Errorf("querystats: threshold must be positive, got %s", d)
	}
	t.mu.Lock()
	t.threshold = d
	t.mu.Unlock()
	return nil
}

func (t *Tracker) Threshold() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.threshold
}

// EnableDetailed switches to per-query logging. Idempotent.
func (t *Tracker) EnableDetailed() {
	t.mode.Store(int32(ModeDetailed))
}

// DisableDetailed returns to slow-query-only logging. Idempotent.
func (t *Tracker) DisableDetailed() {
	t.mode.Store(int32(ModeNormal))
}

func (t *Tracker) Mode() Mode {
	return Mode(t.mode.Load())
}

func roundSeconds(d time.Duration) float64 {
	return round4(d.Seconds())
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func truncateQuery(q string, maxLen int) string {
	if len(q) <= maxLen {
		return q
	}
	return q[:maxLen] + "..."
}
