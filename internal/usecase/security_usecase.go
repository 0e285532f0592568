package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	errwrap "github.com/pkg/errors"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/repository/postgres"
)

// maxEventsPerTree keeps the synthesized event list manageable for trees
// with large security counters.
const maxEventsPerTree = 2

var eventTypes = []string{
	"Pest infestation",
	"Disease outbreak",
	"Weather damage",
	"Equipment malfunction",
}

var severities = []entity.SecurityLevel{
	entity.SecurityLow,
	entity.SecurityMedium,
	entity.SecurityHigh,
	entity.SecurityCritical,
}

type SecurityUsecase interface {
	GetSecurityEvents(ctx context.Context, farm *entity.Farm, lotNumber int, severity entity.SecurityLevel, unresolvedOnly bool, limit int) (*entity.SecurityEventsResponse, error)
}

type securityUsecase struct {
	treeRepo postgres.TreeRepository
	rng      *rand.Rand
}

func NewSecurityUsecase(treeRepo postgres.TreeRepository, rng *rand.Rand) SecurityUsecase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &securityUsecase{treeRepo: treeRepo, rng: rng}
}

// GetSecurityEvents synthesizes event records from the per-tree security
// counters. Trees and their coordinates come back from one joined query;
// no sensor feed exists yet, so type, severity and resolution are drawn at
// random per event.
func (u *securityUsecase) GetSecurityEvents(ctx context.Context, farm *entity.Farm, lotNumber int, severity entity.SecurityLevel, unresolvedOnly bool, limit int) (*entity.SecurityEventsResponse, error) {
	funcName := "SecurityUsecase.GetSecurityEvents"

	trees, err := u.treeRepo.ListWithSecurityEvents(ctx, farm.ID, lotNumber, 1)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var events []entity.SecurityEvent
	for _, tree := range trees {
		count := tree.SecurityEventsCount
		if count > maxEventsPerTree {
			count = maxEventsPerTree
		}
		for i := 0; i < count; i++ {
			selected := severities[u.rng.Intn(len(severities))]
			if severity != "" && selected != severity {
				continue
			}
			resolved := u.rng.Intn(2) == 0
			if unresolvedOnly && resolved {
				continue
			}

			events = append(events, entity.SecurityEvent{
				ID:          fmt.Sprintf("evt_%s", uuid.NewString()),
				TreeID:      tree.TreeCode,
				LotID:       tree.LotNumber,
				EventType:   eventTypes[u.rng.Intn(len(eventTypes))],
				Severity:    selected,
				Description: fmt.Sprintf("Security event detected on tree %s", tree.TreeCode),
				Location: entity.GeoPoint{
					Latitude:  tree.Lat,
					Longitude: tree.Lng,
				},
				Timestamp: time.Now(),
				Resolved:  resolved,
			})
		}
		if limit > 0 && len(events) >= limit*2 {
			break
		}
	}

	// Critical first, then newest.
	sort.SliceStable(events, func(i, j int) bool {
		ci := events[i].Severity == entity.SecurityCritical
		cj := events[j].Severity == entity.SecurityCritical
		if ci != cj {
			return ci
		}
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	resp := &entity.SecurityEventsResponse{TotalEvents: len(events)}
	for _, e := range events {
		if e.Severity == entity.SecurityCritical {
			resp.CriticalEvents++
		}
		if !e.Resolved {
			resp.UnresolvedEvents++
		}
	}

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	resp.Events = events
	if resp.Events == nil {
		resp.Events = []entity.SecurityEvent{}
	}
	return resp, nil
}
