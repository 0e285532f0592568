package usecase

import (
	"context"
	"math"
	"time"

	errwrap "github.com/pkg/errors"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/repository/postgres"
)

type AnalyticsUsecase interface {
	GetProductionAnalytics(ctx context.Context, farm *entity.Farm, readyThreshold float64) (*entity.AnalyticsResponse, error)
}

type analyticsUsecase struct {
	farmRepo postgres.FarmRepository
	lotRepo  postgres.LotRepository
}

func NewAnalyticsUsecase(farmRepo postgres.FarmRepository, lotRepo postgres.LotRepository) AnalyticsUsecase {
	return &analyticsUsecase{farmRepo: farmRepo, lotRepo: lotRepo}
}

// GetProductionAnalytics derives yield and quality estimates for every lot
// from the single grouped aggregate query, plus the farm-wide rollup. A lot
// is harvest-ready once its average maturity reaches readyThreshold.
func (u *analyticsUsecase) GetProductionAnalytics(ctx context.Context, farm *entity.Farm, readyThreshold float64) (*entity.AnalyticsResponse, error) {
	funcName := "AnalyticsUsecase.GetProductionAnalytics"

	metrics, err := u.lotRepo.ListWithTreeMetrics(ctx, farm.ID, nil)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	summary, err := u.farmRepo.AnalyticsSummary(ctx, farm.ID)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	resp := &entity.AnalyticsResponse{
		ProductionMetrics: make([]entity.ProductionMetrics, 0, len(metrics)),
		FarmSummary:       summary,
	}
	var qualitySum float64
	for _, m := range metrics {
		yieldPerHectare := math.Max(0, (m.AvgMaturity/100)*float64(m.TreeCount)*0.5)
		estimatedYield := m.AreaHectares * yieldPerHectare

		qualityScore := math.Max(0, 100-m.AvgFungalThreat+(m.AvgMaturity*0.5))
		qualityScore = math.Min(100, qualityScore)

		pm := entity.ProductionMetrics{
			LotID:            m.LotNumber,
			EstimatedYield:   estimatedYield,
			HarvestReadiness: m.AvgMaturity,
			QualityScore:     qualityScore,
		}
		if m.AvgMaturity >= readyThreshold {
			now := time.Now()
			pm.OptimalHarvestDate = &now
			resp.LotsReadyForHarvest++
		}

		resp.ProductionMetrics = append(resp.ProductionMetrics, pm)
		resp.TotalEstimatedYield += estimatedYield
		qualitySum += qualityScore
	}

	if len(resp.ProductionMetrics) > 0 {
		resp.AverageQualityScore = round1(qualitySum / float64(len(resp.ProductionMetrics)))
	}
	resp.TotalEstimatedYield = round1(resp.TotalEstimatedYield)
	return resp, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
