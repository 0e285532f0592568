package postgres

import (
	"context"

	errwrap "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/helper"
)

type FarmRepository interface {
	FindAllWithLocations(ctx context.Context, farmIDs []int64) ([]entity.FarmLocationRow, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Farm, error)
	ListSlugs(ctx context.Context) ([]string, error)
	AnalyticsSummary(ctx context.Context, farmID int64) (*entity.FarmAnalyticsSummary, error)
}

type farmRepository struct {
	db *gorm.DB
}

func NewFarmRepository(db *gorm.DB) FarmRepository {
	return &farmRepository{db: db}
}

// FindAllWithLocations fetches every farm (or the given ids) in one query,
// extracting coordinates from the geography column in the same pass
// instead of a per-farm follow-up.
func (r *farmRepository) FindAllWithLocations(ctx context.Context, farmIDs []int64) ([]entity.FarmLocationRow, error) {
	funcName := "FarmRepository.FindAllWithLocations"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	query := `
		SELECT
			f.id, f.name, f.slug,
			COALESCE(f.total_area_hectares, 0) AS total_area_hectares,
			f.established_date, f.contact_email, f.contact_phone,
			ST_Y(f.location::geometry) AS lat,
			ST_X(f.location::geometry) AS lng
		FROM farms f`
	var args []interface{}
	if len(farmIDs) > 0 {
		query += " WHERE f.id IN ?"
		args = append(args, farmIDs)
	}
	query += " ORDER BY f.name"

	var farms []entity.FarmLocationRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&farms).Error; err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return farms, nil
}

func (r *farmRepository) FindBySlug(ctx context.Context, slug string) (*entity.Farm, error) {
	funcName := "FarmRepository.FindBySlug"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var farm entity.Farm
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&farm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errwrap.Wrap(err, funcName)
	}
	return &farm, nil
}

func (r *farmRepository) ListSlugs(ctx context.Context) ([]string, error) {
	funcName := "FarmRepository.ListSlugs"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	var slugs []string
	err := r.db.WithContext(ctx).
		Model(&entity.Farm{}).
		Order("slug").
		Pluck("slug", &slugs).Error
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return slugs, nil
}

// AnalyticsSummary rolls a whole farm up in a single round trip: lot and
// tree aggregates via LEFT JOINs, zero-substituted so a farm without trees
// still yields a complete row.
func (r *farmRepository) AnalyticsSummary(ctx context.Context, farmID int64) (*entity.FarmAnalyticsSummary, error) {
	funcName := "FarmRepository.AnalyticsSummary"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	query := `
		SELECT
			f.name AS farm_name,
			f.slug AS farm_slug,
			COALESCE(f.total_area_hectares, 0) AS farm_area,
			COUNT(DISTINCT l.id) AS total_lots,
			COALESCE(SUM(l.area_hectares), 0) AS total_lot_area,
			COUNT(t.id) AS total_trees,
			COUNT(CASE WHEN t.health_status IN ('healthy', 'excellent', 'good') THEN 1 END) AS healthy_trees,
			COUNT(CASE WHEN t.health_status IN ('poor', 'critical', 'dead') THEN 1 END) AS unhealthy_trees,
			COALESCE(AVG(t.maturity_index), 0) AS avg_maturity,
			COALESCE(AVG(t.height_meters), 0) AS avg_height,
			COALESCE(AVG(t.fungal_threat_level), 0) AS avg_fungal_threat,
			COALESCE(SUM(t.security_events_count), 0) AS total_security_events,
			MAX(t.last_inspection) AS last_inspection,
			MIN(t.planting_date) AS oldest_planting,
			MAX(t.planting_date) AS newest_planting
		FROM farms f
		LEFT JOIN lots l ON f.id = l.farm_id
		LEFT JOIN trees t ON l.id = t.lot_id
		WHERE f.id = ?
		GROUP BY f.id, f.name, f.slug, f.total_area_hectares`

	var summary entity.FarmAnalyticsSummary
	res := r.db.WithContext(ctx).Raw(query, farmID).Scan(&summary)
	if res.Error != nil {
		return nil, errwrap.Wrap(res.Error, funcName)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &summary, nil
}
