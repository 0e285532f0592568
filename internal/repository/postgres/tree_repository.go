package postgres

import (
	"context"

	errwrap "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/helper"
)

// securityTreeCap bounds the security-event scan regardless of the
// caller's limit, to keep event synthesis cheap.
const securityTreeCap = 200

type TreeRepository interface {
	ListWithLocations(ctx context.Context, lotID int64, limit int) ([]entity.TreeLocationRow, error)
	ListWithSecurityEvents(ctx context.Context, farmID int64, lotNumber int, minEvents int) ([]entity.SecurityTreeRow, error)
}

type treeRepository struct {
	db *gorm.DB
}

func NewTreeRepository(db *gorm.DB) TreeRepository {
	return &treeRepository{db: db}
}

// ListWithLocations fetches all trees of a lot in one query with their
// coordinates extracted inline. limit <= 0 means no limit.
func (r *treeRepository) ListWithLocations(ctx context.Context, lotID int64, limit int) ([]entity.TreeLocationRow, error) {
	funcName := "TreeRepository.ListWithLocations"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	query := `
		SELECT
			t.id, t.tree_code, t.variety, t.health_status,
			COALESCE(t.maturity_index, 0) AS maturity_index,
			COALESCE(t.height_meters, 0) AS height_meters,
			COALESCE(t.age_years, 0) AS age_years,
			ST_Y(t.location::geometry) AS lat,
			ST_X(t.location::geometry) AS lng
		FROM trees t
		WHERE t.lot_id = ?
		ORDER BY t.tree_code`
	args := []interface{}{lotID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var trees []entity.TreeLocationRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&trees).Error; err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return trees, nil
}

// ListWithSecurityEvents fetches trees with recorded security events,
// joined with their lot, in one query. lotNumber <= 0 means all lots.
func (r *treeRepository) ListWithSecurityEvents(ctx context.Context, farmID int64, lotNumber int, minEvents int) ([]entity.SecurityTreeRow, error) {
	funcName := "TreeRepository.ListWithSecurityEvents"
	if err := helper.CheckDeadline(ctx); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	query := `
		SELECT
			t.id, t.tree_code, t.security_events_count, t.lot_id,
			l.lot_number,
			ST_Y(t.location::geometry) AS lat,
			ST_X(t.location::geometry) AS lng
		FROM trees t
		JOIN lots l ON t.lot_id = l.id
		WHERE t.farm_id = ? AND t.security_events_count >= ?`
	args := []interface{}{farmID, minEvents}
	if lotNumber > 0 {
		query += " AND l.lot_number = ?"
		args = append(args, lotNumber)
	}
	query += `
		ORDER BY t.security_events_count DESC
		LIMIT ?`
	args = append(args, securityTreeCap)

	var trees []entity.SecurityTreeRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&trees).Error; err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return trees, nil
}
