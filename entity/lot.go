package entity

import "time"

type Lot struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FarmID          int64      `gorm:"index;not null" json:"farm_id"`
	LotNumber       int        `gorm:"not null" json:"lot_number"`
	AreaHectares    float64    `gorm:"type:decimal(8,2);not null" json:"area_hectares"`
	TreeDensity     int        `gorm:"default:0" json:"tree_density"`
	SoilType        string     `gorm:"size:100" json:"soil_type"`
	ElevationMeters int        `json:"elevation_meters"`
	Boundary        string     `gorm:"type:geography(POLYGON,4326)" json:"-"`
	Centroid        string     `gorm:"type:geography(POINT,4326)" json:"-"`
	PlantingDate    *time.Time `gorm:"type:date" json:"planting_date"`
	LastHarvest     *time.Time `gorm:"type:date" json:"last_harvest"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// LotTreeMetrics is one row of the grouped aggregate that replaces the
// per-lot tree queries: lot columns plus tree aggregates from a single
// LEFT JOIN, so lots without trees still appear with zeroed metrics.
type LotTreeMetrics struct {
	LotDBID             int64      `gorm:"column:lot_db_id" json:"lot_db_id"`
	LotNumber           int        `json:"lot_number"`
	AreaHectares        float64    `json:"area_hectares"`
	TreeDensity         int        `json:"tree_density"`
	SoilType            string     `json:"soil_type"`
	ElevationMeters     int        `json:"elevation_meters"`
	PlantingDate        *time.Time `json:"planting_date"`
	LastHarvest         *time.Time `json:"last_harvest"`
	TreeCount           int64      `json:"tree_count"`
	HealthyTrees        int64      `json:"healthy_trees"`
	UnhealthyTrees      int64      `json:"unhealthy_trees"`
	AvgMaturity         float64    `json:"avg_maturity"`
	AvgHeight           float64    `json:"avg_height"`
	AvgDiameter         float64    `json:"avg_diameter"`
	AvgFungalThreat     float64    `json:"avg_fungal_threat"`
	TotalSecurityEvents int64      `json:"total_security_events"`
	LastTreeInspection  *time.Time `json:"last_tree_inspection"`
}

type LotSummary struct {
	LotID           int       `json:"lot_id"`
	TotalTrees      int       `json:"total_trees"`
	HealthyTrees    int       `json:"healthy_trees"`
	SecurityEvents  int       `json:"security_events"`
	AvgMaturity     float64   `json:"avg_maturity"`
	AvgFungalThreat float64   `json:"avg_fungal_threat"`
	AreaHectares    float64   `json:"area_hectares"`
	LastInspection  time.Time `json:"last_inspection"`
}

type LotsResponse struct {
	Lots       []LotSummary `json:"lots"`
	TotalLots  int          `json:"total_lots"`
	TotalArea  float64      `json:"total_area"`
	TotalTrees int          `json:"total_trees"`
}
