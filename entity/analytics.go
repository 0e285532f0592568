package entity

import "time"

type ProductionMetrics struct {
	LotID              int        `json:"lot_id"`
	EstimatedYield     float64    `json:"estimated_yield"`
	HarvestReadiness   float64    `json:"harvest_readiness"`
	QualityScore       float64    `json:"quality_score"`
	OptimalHarvestDate *time.Time `json:"optimal_harvest_date"`
}

type AnalyticsResponse struct {
	ProductionMetrics   []ProductionMetrics   `json:"production_metrics"`
	TotalEstimatedYield float64               `json:"total_estimated_yield"`
	AverageQualityScore float64               `json:"average_quality_score"`
	LotsReadyForHarvest int                   `json:"lots_ready_for_harvest"`
	FarmSummary         *FarmAnalyticsSummary `json:"farm_summary,omitempty"`
}
