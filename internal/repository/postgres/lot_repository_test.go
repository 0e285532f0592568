package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lotMetricsColumns = []string{
	"lot_db_id", "lot_number", "area_hectares", "tree_density", "soil_type",
	"elevation_meters", "planting_date", "last_harvest", "tree_count",
	"healthy_trees", "unhealthy_trees", "avg_maturity", "avg_height",
	"avg_diameter", "avg_fungal_threat", "total_security_events",
	"last_tree_inspection",
}

func TestLotRepositoryListWithTreeMetrics(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLotRepository(db)

	inspected := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("LEFT JOIN trees t").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(lotMetricsColumns).
			AddRow(10, 1, 12.5, 400, "clay", 1100, nil, nil, 320, 280, 15, 68.5, 3.1, 14.2, 9.8, 12, inspected).
			// A lot without trees still comes back, zero-substituted by the query.
			AddRow(11, 2, 8.0, 0, "loam", 1050, nil, nil, 0, 0, 0, 0, 0, 0, 0, 0, nil))

	metrics, err := repo.ListWithTreeMetrics(context.Background(), 5, nil)
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	assert.Equal(t, 1, metrics[0].LotNumber)
	assert.EqualValues(t, 320, metrics[0].TreeCount)
	assert.Equal(t, 68.5, metrics[0].AvgMaturity)

	empty := metrics[1]
	assert.Equal(t, 2, empty.LotNumber)
	assert.EqualValues(t, 0, empty.TreeCount)
	assert.EqualValues(t, 0, empty.AvgMaturity)
	assert.EqualValues(t, 0, empty.TotalSecurityEvents)
	assert.Nil(t, empty.LastTreeInspection)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLotRepositoryListWithTreeMetricsScoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLotRepository(db)

	mock.ExpectQuery(`AND l.lot_number IN`).
		WithArgs(int64(5), 1, 2).
		WillReturnRows(sqlmock.NewRows(lotMetricsColumns))

	metrics, err := repo.ListWithTreeMetrics(context.Background(), 5, []int{1, 2})
	require.NoError(t, err)
	assert.Empty(t, metrics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLotRepositoryFindByNumberNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLotRepository(db)

	mock.ExpectQuery(`FROM "lots"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	lot, err := repo.FindByNumber(context.Background(), 5, 99)
	require.NoError(t, err)
	assert.Nil(t, lot)
}
