package usecase

import (
	"context"
	"math/rand"
	"time"

	errwrap "github.com/pkg/errors"

	"github.com/theobroma-digital/geo-api/entity"
	"github.com/theobroma-digital/geo-api/internal/repository/postgres"
)

var conditions = []entity.WeatherCondition{
	entity.WeatherSunny,
	entity.WeatherCloudy,
	entity.WeatherRainy,
}

type WeatherUsecase interface {
	GetWeatherData(ctx context.Context, farm *entity.Farm, lotNumbers []int) (*entity.WeatherResponse, error)
}

type weatherUsecase struct {
	lotRepo postgres.LotRepository
	rng     *rand.Rand
}

func NewWeatherUsecase(lotRepo postgres.LotRepository, rng *rand.Rand) WeatherUsecase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &weatherUsecase{lotRepo: lotRepo, rng: rng}
}

// GetWeatherData returns a weather snapshot per lot. No station feed is
// wired up, so readings are drawn from agronomically plausible bands.
// Favorable means 24-30°C, 65-85% humidity and under 10mm of rain.
func (u *weatherUsecase) GetWeatherData(ctx context.Context, farm *entity.Farm, lotNumbers []int) (*entity.WeatherResponse, error) {
	funcName := "WeatherUsecase.GetWeatherData"

	lots, err := u.lotRepo.ListByFarm(ctx, farm.ID, lotNumbers)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	resp := &entity.WeatherResponse{
		CurrentWeather: make([]entity.WeatherData, 0, len(lots)),
	}
	for _, lot := range lots {
		temperature := u.inRange(18, 35)
		humidity := u.inRange(40, 90)
		rainfall := u.inRange(0, 25)
		windSpeed := u.inRange(5, 45)

		resp.CurrentWeather = append(resp.CurrentWeather, entity.WeatherData{
			LotID:       lot.LotNumber,
			Condition:   conditions[u.rng.Intn(len(conditions))],
			Temperature: temperature,
			Humidity:    humidity,
			Rainfall:    rainfall,
			WindSpeed:   windSpeed,
			Timestamp:   time.Now(),
		})

		if temperature >= 24 && temperature <= 30 && humidity >= 65 && humidity <= 85 && rainfall < 10 {
			resp.FavorableConditions++
		}
		if temperature > 35 || temperature < 18 || rainfall > 30 || windSpeed > 40 {
			resp.WeatherAlerts++
		}
	}
	return resp, nil
}

func (u *weatherUsecase) inRange(lo, hi float64) float64 {
	return lo + u.rng.Float64()*(hi-lo)
}
