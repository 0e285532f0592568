package usecase

import (
	"context"
	"time"

	errwrap "github.com/pkg/errors"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/repository/postgres"
)

type LotUsecase interface {
	GetLotsSummary(ctx context.Context, farm *entity.Farm, limit int, minMaturity float64) (*entity.LotsResponse, error)
	GetLotTrees(ctx context.Context, farm *entity.Farm, lotNumber, limit int) (*entity.TreesResponse, error)
}

type lotUsecase struct {
	lotRepo  postgres.LotRepository
	treeRepo postgres.TreeRepository
}

func NewLotUsecase(lotRepo postgres.LotRepository, treeRepo postgres.TreeRepository) LotUsecase {
	return &lotUsecase{lotRepo: lotRepo, treeRepo: treeRepo}
}

// GetLotsSummary builds per-lot summaries from a single grouped aggregate
// query. limit <= 0 means all lots, minMaturity <= 0 disables the filter.
func (u *lotUsecase) GetLotsSummary(ctx context.Context, farm *entity.Farm, limit int, minMaturity float64) (*entity.LotsResponse, error) {
	funcName := "LotUsecase.GetLotsSummary"

	metrics, err := u.lotRepo.ListWithTreeMetrics(ctx, farm.ID, nil)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	resp := &entity.LotsResponse{Lots: make([]entity.LotSummary, 0, len(metrics))}
	for _, m := range metrics {
		if minMaturity > 0 && m.AvgMaturity < minMaturity {
			continue
		}

		lastInspection := time.Now()
		if m.LastTreeInspection != nil {
			lastInspection = *m.LastTreeInspection
		}

		resp.Lots = append(resp.Lots, entity.LotSummary{
			LotID:           m.LotNumber,
			TotalTrees:      int(m.TreeCount),
			HealthyTrees:    int(m.HealthyTrees),
			SecurityEvents:  int(m.TotalSecurityEvents),
			AvgMaturity:     m.AvgMaturity,
			AvgFungalThreat: m.AvgFungalThreat,
			AreaHectares:    m.AreaHectares,
			LastInspection:  lastInspection,
		})
		resp.TotalTrees += int(m.TreeCount)
		resp.TotalArea += m.AreaHectares

		if limit > 0 && len(resp.Lots) >= limit {
			break
		}
	}
	resp.TotalLots = len(resp.Lots)
	return resp, nil
}

// GetLotTrees returns the trees of one lot with coordinates fetched in the
// same query as the tree columns: two round trips total, independent of
// how many trees the lot has.
func (u *lotUsecase) GetLotTrees(ctx context.Context, farm *entity.Farm, lotNumber, limit int) (*entity.TreesResponse, error) {
	funcName := "LotUsecase.GetLotTrees"

	lot, err := u.lotRepo.FindByNumber(ctx, farm.ID, lotNumber)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	if lot == nil {
		return nil, &LotNotFoundError{LotNumber: lotNumber, FarmSlug: farm.Slug}
	}

	rows, err := u.treeRepo.ListWithLocations(ctx, lot.ID, limit)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	resp := &entity.TreesResponse{
		Trees:  make([]entity.TreeInfo, 0, len(rows)),
		LotID:  lotNumber,
		FarmID: farm.Slug,
	}
	for _, row := range rows {
		resp.Trees = append(resp.Trees, entity.TreeInfo{
			ID:            row.TreeCode,
			Variety:       row.Variety,
			HealthStatus:  row.HealthStatus,
			MaturityIndex: row.MaturityIndex,
			HeightMeters:  row.HeightMeters,
			AgeYears:      row.AgeYears,
			Location: entity.GeoPoint{
				Latitude:  row.Lat,
				Longitude: row.Lng,
			},
		})
	}
	resp.TotalTrees = len(resp.Trees)
	return resp, nil
}
