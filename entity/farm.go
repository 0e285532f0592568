package entity

import "time"

// Farm is a plantation with a PostGIS point location.
type Farm struct {
	ID                int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string     `gorm:"size:255;not null" json:"name"`
	Slug              string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Location          string     `gorm:"type:geography(POINT,4326);not null" json:"-"`
	TotalAreaHectares float64    `gorm:"type:decimal(10,2)" json:"total_area_hectares"`
	EstablishedDate   *time.Time `gorm:"type:date" json:"established_date"`
	ContactEmail      string     `gorm:"size:255" json:"contact_email"`
	ContactPhone      string     `gorm:"size:50" json:"contact_phone"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// GeoPoint is a WGS84 coordinate pair as exposed over the API.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FarmLocationRow is the scan target for the bulk farm select that extracts
// coordinates in the same pass (ST_Y/ST_X over the geography column).
type FarmLocationRow struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Slug              string     `json:"slug"`
	TotalAreaHectares float64    `json:"total_area_hectares"`
	EstablishedDate   *time.Time `json:"established_date"`
	ContactEmail      string     `json:"contact_email"`
	ContactPhone      string     `json:"contact_phone"`
	Lat               float64    `json:"lat"`
	Lng               float64    `json:"lng"`
}

// FarmInfo is the API representation of a farm.
type FarmInfo struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Location          GeoPoint `json:"location"`
	TotalAreaHectares float64  `json:"total_area_hectares"`
	EstablishedDate   *string  `json:"established_date"`
}

type FarmsResponse struct {
	Farms      []string   `json:"farms"`
	TotalFarms int        `json:"total_farms"`
	FarmsData  []FarmInfo `json:"farms_data"`
}

// FarmAnalyticsSummary is the single-query rollup of a whole farm: lot and
// tree aggregates computed in one round trip via LEFT JOINs.
type FarmAnalyticsSummary struct {
	FarmName            string     `json:"farm_name"`
	FarmSlug            string     `json:"farm_slug"`
	FarmArea            float64    `json:"farm_area"`
	TotalLots           int64      `json:"total_lots"`
	TotalLotArea        float64    `json:"total_lot_area"`
	TotalTrees          int64      `json:"total_trees"`
	HealthyTrees        int64      `json:"healthy_trees"`
	UnhealthyTrees      int64      `json:"unhealthy_trees"`
	AvgMaturity         float64    `json:"avg_maturity"`
	AvgHeight           float64    `json:"avg_height"`
	AvgFungalThreat     float64    `json:"avg_fungal_threat"`
	TotalSecurityEvents int64      `json:"total_security_events"`
	LastInspection      *time.Time `json:"last_inspection"`
	OldestPlanting      *time.Time `json:"oldest_planting"`
	NewestPlanting      *time.Time `json:"newest_planting"`
}
