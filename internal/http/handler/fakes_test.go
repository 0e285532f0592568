package handler

import (
	"context"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/usecase"
)

type fakeFarmUsecase struct {
	farms *entity.FarmsResponse
	farm  *entity.Farm
	slugs []string
}

func (f *fakeFarmUsecase) GetAllFarms(_ context.Context) (*entity.FarmsResponse, error) {
	return f.farms, nil
}

func (f *fakeFarmUsecase) ResolveFarm(_ context.Context, slug string) (*entity.Farm, error) {
	if f.farm != nil && f.farm.Slug == slug {
		return f.farm, nil
	}
	return nil, &usecase.FarmNotFoundError{Slug: slug, Available: f.slugs}
}

type fakeLotUsecase struct {
	lots  *entity.LotsResponse
	trees *entity.TreesResponse
}

func (f *fakeLotUsecase) GetLotsSummary(_ context.Context, _ *entity.Farm, _ int, _ float64) (*entity.LotsResponse, error) {
	return f.lots, nil
}

func (f *fakeLotUsecase) GetLotTrees(_ context.Context, farm *entity.Farm, lotNumber, _ int) (*entity.TreesResponse, error) {
	if f.trees == nil {
		return nil, &usecase.LotNotFoundError{LotNumber: lotNumber, FarmSlug: farm.Slug}
	}
	return f.trees, nil
}

type fakeSecurityUsecase struct {
	resp *entity.SecurityEventsResponse

	gotLotID    int
	gotSeverity entity.SecurityLevel
	gotLimit    int
}

func (f *fakeSecurityUsecase) GetSecurityEvents(_ context.Context, _ *entity.Farm, lotNumber int, severity entity.SecurityLevel, _ bool, limit int) (*entity.SecurityEventsResponse, error) {
	f.gotLotID = lotNumber
	f.gotSeverity = severity
	f.gotLimit = limit
	return f.resp, nil
}
