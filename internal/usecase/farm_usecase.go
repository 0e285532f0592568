package usecase

import (
	"context"

	errwrap "github.com/pkg/errors"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/repository/postgres"
)

type FarmUsecase interface {
	GetAllFarms(ctx context.Context) (*entity.FarmsResponse, error)
	ResolveFarm(ctx context.Context, slug string) (*entity.Farm, error)
}

type farmUsecase struct {
	farmRepo postgres.FarmRepository
}

func NewFarmUsecase(farmRepo postgres.FarmRepository) FarmUsecase {
	return &farmUsecase{farmRepo: farmRepo}
}

// GetAllFarms returns every farm with its coordinates; one query total.
func (u *farmUsecase) GetAllFarms(ctx context.Context) (*entity.FarmsResponse, error) {
	funcName := "FarmUsecase.GetAllFarms"

	rows, err := u.farmRepo.FindAllWithLocations(ctx, nil)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	resp := &entity.FarmsResponse{
		Farms:      make([]string, 0, len(rows)),
		FarmsData:  make([]entity.FarmInfo, 0, len(rows)),
		TotalFarms: len(rows),
	}
	for _, row := range rows {
		var established *string
		if row.EstablishedDate != nil {
			s := row.EstablishedDate.Format("2006-01-02")
			established = &s
		}
		resp.Farms = append(resp.Farms, row.Slug)
		resp.FarmsData = append(resp.FarmsData, entity.FarmInfo{
			ID:   row.ID,
			Name: row.Name,
			Slug: row.Slug,
			Location: entity.GeoPoint{
				Latitude:  row.Lat,
				Longitude: row.Lng,
			},
			TotalAreaHectares: row.TotalAreaHectares,
			EstablishedDate:   established,
		})
	}
	return resp, nil
}

// ResolveFarm looks a farm up by slug and returns a FarmNotFoundError
// listing the known slugs when it does not exist.
func (u *farmUsecase) ResolveFarm(ctx context.Context, slug string) (*entity.Farm, error) {
	funcName := "FarmUsecase.ResolveFarm"

	farm, err := u.farmRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	if farm == nil {
		available, err := u.farmRepo.ListSlugs(ctx)
		if err != nil {
			return nil, errwrap.Wrap(err, funcName)
		}
		return nil, &FarmNotFoundError{Slug: slug, Available: available}
	}
	return farm, nil
}
