package postgres

import (
	"context"

	errwrap "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/helper"
)

type LotRepository interface {
	FindByNumber(ctx context.Context, farmID int64, lotNumber int) (*entity.Lot, error)
	ListByFarm(ctx context.Context, farmID int64, lotNumbers []int) ([]entity.Lot, error)
	ListWithTreeMetrics(ctx context.Context, farmID int64, lotNumbers []int) ([]entity.LotTreeMetrics, error)
}

type lotRepository struct {
	db *gorm.DB
}

func NewLotRepository(db *gorm.DB) LotRepository {
	return &lotRepository{db: db}
}

func (r *lotRepository) FindByNumber(ctx context.Context, farmID int64, lotNumber int) (*entity.Lot, error) {
	funcName := "LotRepository.FindByNumber"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var lot entity.Lot
	err := r.db.WithContext(ctx).
		Where("farm_id = ? AND lot_number = ?", farmID, lotNumber).
		First(&lot).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errwrap.Wrap(err, funcName)
	}
	return &lot, nil
}

func (r *lotRepository) ListByFarm(ctx context.Context, farmID int64, lotNumbers []int) ([]entity.Lot, error) {
	funcName := "LotRepository.ListByFarm"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	q := r.db.WithContext(ctx).Where("farm_id = ?", farmID)
	if len(lotNumbers) > 0 {
		q = q.Where("lot_number IN ?", lotNumbers)
	}

	var lots []entity.Lot
	if err := q.Order("lot_number").Find(&lots).Error; err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return lots, nil
}

// ListWithTreeMetrics fetches every lot of a farm together with its tree
// aggregates in one grouped query. The LEFT JOIN keeps lots that have no
// trees; their averages and sums come back as zero, not NULL.
func (r *lotRepository) ListWithTreeMetrics(ctx context.Context, farmID int64, lotNumbers []int) ([]entity.LotTreeMetrics, error) {
	funcName := "LotRepository.ListWithTreeMetrics"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	query := `
		SELECT
			l.id AS lot_db_id,
			l.lot_number,
			l.area_hectares,
			l.tree_density,
			l.soil_type,
			l.elevation_meters,
			l.planting_date,
			l.last_harvest,
			COUNT(t.id) AS tree_count,
			COUNT(CASE WHEN t.health_status IN ('healthy', 'excellent', 'good') THEN 1 END) AS healthy_trees,
			COUNT(CASE WHEN t.health_status IN ('poor', 'critical', 'dead') THEN 1 END) AS unhealthy_trees,
			COALESCE(AVG(t.maturity_index), 0) AS avg_maturity,
			COALESCE(AVG(t.height_meters), 0) AS avg_height,
			COALESCE(AVG(t.trunk_diameter_cm), 0) AS avg_diameter,
			COALESCE(AVG(t.fungal_threat_level), 0) AS avg_fungal_threat,
			COALESCE(SUM(t.security_events_count), 0) AS total_security_events,
			MAX(t.last_inspection) AS last_tree_inspection
		FROM lots l
		LEFT JOIN trees t ON l.id = t.lot_id
		WHERE l.farm_id = ?`
	args := []interface{}{farmID}
	if len(lotNumbers) > 0 {
		query += " AND l.lot_number IN ?"
		args = append(args, lotNumbers)
	}
	query += `
		GROUP BY l.id, l.lot_number, l.area_hectares, l.tree_density,
			l.soil_type, l.elevation_meters, l.planting_date, l.last_harvest
		ORDER BY l.lot_number`

	var metrics []entity.LotTreeMetrics
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&metrics).Error; err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return metrics, nil
}
