package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theobroma-digital/geo-api/entity"
)

func newFarmApp(farmUC *fakeFarmUsecase, lotUC *fakeLotUsecase) *fiber.App {
	app := fiber.New()
	NewFarmHandler(farmUC, lotUC).Register(app)
	return app
}

func TestFarmHandlerListFarms(t *testing.T) {
	farmUC := &fakeFarmUsecase{
		farms: &entity.FarmsResponse{
			Farms:      []string{"valley-verde", "monte-alto"},
			TotalFarms: 2,
		},
	}
	app := newFarmApp(farmUC, &fakeLotUsecase{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body entity.FarmsResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, 2, body.TotalFarms)
	assert.Equal(t, []string{"valley-verde", "monte-alto"}, body.Farms)
}

func TestFarmHandlerGetLotsSummary(t *testing.T) {
	farmUC := &fakeFarmUsecase{farm: &entity.Farm{ID: 1, Slug: "valley-verde"}}
	lotUC := &fakeLotUsecase{
		lots: &entity.LotsResponse{
			Lots:      []entity.LotSummary{{LotID: 1, TotalTrees: 10}},
			TotalLots: 1,
		},
	}
	app := newFarmApp(farmUC, lotUC)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms/valley-verde/lots", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body entity.LotsResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.TotalLots)
}

func TestFarmHandlerUnknownFarm(t *testing.T) {
	farmUC := &fakeFarmUsecase{slugs: []string{"valley-verde", "monte-alto"}}
	app := newFarmApp(farmUC, &fakeLotUsecase{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms/nowhere/lots", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body entity.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Not Found", body.Error)
	assert.Contains(t, body.Message, "nowhere")
	assert.Contains(t, body.Message, "valley-verde")
}

func TestFarmHandlerLotsLimitValidation(t *testing.T) {
	farmUC := &fakeFarmUsecase{farm: &entity.Farm{ID: 1, Slug: "valley-verde"}}
	app := newFarmApp(farmUC, &fakeLotUsecase{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms/valley-verde/lots?limit=500", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFarmHandlerGetLotTrees(t *testing.T) {
	farmUC := &fakeFarmUsecase{farm: &entity.Farm{ID: 1, Slug: "valley-verde"}}
	lotUC := &fakeLotUsecase{
		trees: &entity.TreesResponse{
			Trees:      []entity.TreeInfo{{ID: "T-001", HealthStatus: "healthy"}},
			TotalTrees: 1,
			LotID:      3,
			FarmID:     "valley-verde",
		},
	}
	app := newFarmApp(farmUC, lotUC)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms/valley-verde/lots/3/trees?limit=100", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body entity.TreesResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.TotalTrees)
	assert.Equal(t, 3, body.LotID)
}

func TestFarmHandlerLotNotFound(t *testing.T) {
	farmUC := &fakeFarmUsecase{farm: &entity.Farm{ID: 1, Slug: "valley-verde"}}
	app := newFarmApp(farmUC, &fakeLotUsecase{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms/valley-verde/lots/99/trees", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body entity.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Message, "lot 99")
}

func TestFarmHandlerInvalidLotID(t *testing.T) {
	farmUC := &fakeFarmUsecase{farm: &entity.Farm{ID: 1, Slug: "valley-verde"}}
	app := newFarmApp(farmUC, &fakeLotUsecase{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms/valley-verde/lots/abc/trees", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
