package usecase

import (
	"context"

	"github.com/theobroma-digital/geo-api/entity"
)

type fakeFarmRepo struct {
	rows    []entity.FarmLocationRow
	farms   map[string]*entity.Farm
	slugs   []string
	summary *entity.FarmAnalyticsSummary
}

func (f *fakeFarmRepo) FindAllWithLocations(_ context.Context, _ []int64) ([]entity.FarmLocationRow, error) {
	return f.rows, nil
}

func (f *fakeFarmRepo) FindBySlug(_ context.Context, slug string) (*entity.Farm, error) {
	return f.farms[slug], nil
}

func (f *fakeFarmRepo) ListSlugs(_ context.Context) ([]string, error) {
	return f.slugs, nil
}

func (f *fakeFarmRepo) AnalyticsSummary(_ context.Context, _ int64) (*entity.FarmAnalyticsSummary, error) {
	return f.summary, nil
}

type fakeLotRepo struct {
	lots     []entity.Lot
	byNumber map[int]*entity.Lot
	metrics  []entity.LotTreeMetrics
}

func (f *fakeLotRepo) FindByNumber(_ context.Context, _ int64, lotNumber int) (*entity.Lot, error) {
	return f.byNumber[lotNumber], nil
}

func (f *fakeLotRepo) ListByFarm(_ context.Context, _ int64, lotNumbers []int) ([]entity.Lot, error) {
	if len(lotNumbers) == 0 {
		return f.lots, nil
	}
	want := make(map[int]bool, len(lotNumbers))
	for _, n := range lotNumbers {
		want[n] = true
	}
	var out []entity.Lot
	for _, lot := range f.lots {
		if want[lot.LotNumber] {
			out = append(out, lot)
		}
	}
	return out, nil
}

func (f *fakeLotRepo) ListWithTreeMetrics(_ context.Context, _ int64, _ []int) ([]entity.LotTreeMetrics, error) {
	return f.metrics, nil
}

type fakeTreeRepo struct {
	locations []entity.TreeLocationRow
	security  []entity.SecurityTreeRow
}

func (f *fakeTreeRepo) ListWithLocations(_ context.Context, _ int64, limit int) ([]entity.TreeLocationRow, error) {
	if limit > 0 && limit < len(f.locations) {
		return f.locations[:limit], nil
	}
	return f.locations, nil
}

func (f *fakeTreeRepo) ListWithSecurityEvents(_ context.Context, _ int64, lotNumber int, _ int) ([]entity.SecurityTreeRow, error) {
	if lotNumber <= 0 {
		return f.security, nil
	}
	var out []entity.SecurityTreeRow
	for _, row := range f.security {
		if row.LotNumber == lotNumber {
			out = append(out, row)
		}
	}
	return out, nil
}
