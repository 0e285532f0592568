package usecase

import (
	"time"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/querystats"
)

// StatsUsecase is the read/control surface over the query tracker. It owns
// no state of its own; it reshapes snapshots and forwards toggles.
type StatsUsecase interface {
	GetQueryStats() entity.QueryStatsResponse
	ResetQueryStats() entity.DebugAck
	EnableDetailedLogging() entity.DebugAck
	DisableDetailedLogging() entity.DebugAck
}

type statsUsecase struct {
	tracker *querystats.Tracker
}

func NewStatsUsecase(tracker *querystats.Tracker) StatsUsecase {
	return &statsUsecase{tracker: tracker}
}

func (u *statsUsecase) GetQueryStats() entity.QueryStatsResponse {
	return entity.QueryStatsResponse{
		QueryPerformance: u.tracker.Snapshot(),
		Timestamp:        time.Now(),
		Note:             "Use this endpoint to monitor query performance and identify bottlenecks",
	}
}

func (u *statsUsecase) ResetQueryStats() entity.DebugAck {
	u.tracker.Reset()
	return entity.DebugAck{
		Message:   "Query performance statistics have been reset",
		Timestamp: time.Now(),
	}
}

func (u *statsUsecase) EnableDetailedLogging() entity.DebugAck {
	u.tracker.EnableDetailed()
	return entity.DebugAck{
		Message:   "Detailed query logging has been enabled",
		Warning:   "This will generate verbose logs. Use disable-detailed-logging to turn off.",
		Timestamp: time.Now(),
	}
}

func (u *statsUsecase) DisableDetailedLogging() entity.DebugAck {
	u.tracker.DisableDetailed()
	return entity.DebugAck{
		Message:   "Detailed query logging has been disabled",
		Note:      "Only slow queries will be logged now",
		Timestamp: time.Now(),
	}
}
