package entity

import "time"

// SlowQuery is a retained sample of a query whose duration exceeded the
// slow threshold. Parameters are already bound into Query by the time the
// statement reaches the tracker.
type SlowQuery struct {
	Query         string    `json:"query"`
	RowsAffected  int64     `json:"rows_affected"`
	ExecutionTime float64   `json:"execution_time"`
	Timestamp     time.Time `json:"timestamp"`
}

// QueryPerformance is a frozen view of the query statistics. Durations are
// seconds rounded to four decimals.
type QueryPerformance struct {
	TotalQueries      int64       `json:"total_queries"`
	AvgQueryTime      float64     `json:"avg_query_time"`
	MaxQueryTime      float64     `json:"max_query_time"`
	MinQueryTime      float64     `json:"min_query_time"`
	SlowQueriesCount  int64       `json:"slow_queries_count"`
	RecentSlowQueries []SlowQuery `json:"recent_slow_queries"`
}

type QueryStatsResponse struct {
	QueryPerformance QueryPerformance `json:"query_performance"`
	Timestamp        time.Time        `json:"timestamp"`
	Note             string           `json:"note,omitempty"`
}

// DebugAck acknowledges a debug operation (reset, logging toggles).
type DebugAck struct {
	Message   string    `json:"message"`
	Warning   string    `json:"warning,omitempty"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
