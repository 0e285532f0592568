package entity

import "time"

type Tree struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FarmID              int64      `gorm:"index;not null" json:"farm_id"`
	LotID               int64      `gorm:"index;not null" json:"lot_id"`
	TreeCode            string     `gorm:"size:50;uniqueIndex;not null" json:"tree_code"`
	Location            string     `gorm:"type:geography(POINT,4326);not null" json:"-"`
	Variety             string     `gorm:"size:100" json:"variety"`
	PlantingDate        *time.Time `gorm:"type:date" json:"planting_date"`
	AgeYears            int        `json:"age_years"`
	HeightMeters        float64    `gorm:"type:decimal(4,2)" json:"height_meters"`
	TrunkDiameterCm     float64    `gorm:"type:decimal(5,2)" json:"trunk_diameter_cm"`
	HealthStatus        string     `gorm:"size:50;default:healthy" json:"health_status"`
	LastInspection      *time.Time `gorm:"type:date" json:"last_inspection"`
	MaturityIndex       float64    `gorm:"type:decimal(5,2);default:0" json:"maturity_index"`
	FungalThreatLevel   float64    `gorm:"type:decimal(5,2);default:0" json:"fungal_threat_level"`
	SecurityEventsCount int        `gorm:"default:0" json:"security_events_count"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TreeLocationRow is the scan target for the bulk tree select with
// coordinates extracted in the same query.
type TreeLocationRow struct {
	ID            int64   `json:"id"`
	TreeCode      string  `json:"tree_code"`
	Variety       string  `json:"variety"`
	HealthStatus  string  `json:"health_status"`
	MaturityIndex float64 `json:"maturity_index"`
	HeightMeters  float64 `json:"height_meters"`
	AgeYears      int     `json:"age_years"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}

// SecurityTreeRow is a tree with recorded security events joined with its
// lot number, one row per tree from a single query.
type SecurityTreeRow struct {
	ID                  int64   `json:"id"`
	TreeCode            string  `json:"tree_code"`
	SecurityEventsCount int     `json:"security_events_count"`
	LotID               int64   `json:"lot_id"`
	LotNumber           int     `json:"lot_number"`
	Lat                 float64 `json:"lat"`
	Lng                 float64 `json:"lng"`
}

// TreeInfo is the API representation of a tree inside a lot.
type TreeInfo struct {
	ID            string   `json:"id"`
	Variety       string   `json:"variety"`
	HealthStatus  string   `json:"health_status"`
	MaturityIndex float64  `json:"maturity_index"`
	HeightMeters  float64  `json:"height_meters"`
	AgeYears      int      `json:"age_years"`
	Location      GeoPoint `json:"location"`
}

type TreesResponse struct {
	Trees      []TreeInfo `json:"trees"`
	TotalTrees int        `json:"total_trees"`
	LotID      int        `json:"lot_id"`
	FarmID     string     `json:"farm_id"`
}
