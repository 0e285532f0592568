package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theobroma-digital/geo-api/entity"
)

func newSecurityApp(farmUC *fakeFarmUsecase, secUC *fakeSecurityUsecase) *fiber.App {
	app := fiber.New()
	NewSecurityHandler(farmUC, secUC).Register(app)
	return app
}

func TestSecurityHandlerGetSecurityEvents(t *testing.T) {
	farmUC := &fakeFarmUsecase{farm: &entity.Farm{ID: 1, Slug: "valley-verde"}}
	secUC := &fakeSecurityUsecase{
		resp: &entity.SecurityEventsResponse{
			Events:      []entity.SecurityEvent{{ID: "evt_1", Severity: entity.SecurityHigh}},
			TotalEvents: 1,
		},
	}
	app := newSecurityApp(farmUC, secUC)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms/valley-verde/security/events?lot_id=2&severity=high&limit=25", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body entity.SecurityEventsResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.TotalEvents)

	assert.Equal(t, 2, secUC.gotLotID)
	assert.Equal(t, entity.SecurityHigh, secUC.gotSeverity)
	assert.Equal(t, 25, secUC.gotLimit)
}

func TestSecurityHandlerDefaultLimit(t *testing.T) {
	farmUC := &fakeFarmUsecase{farm: &entity.Farm{ID: 1, Slug: "valley-verde"}}
	secUC := &fakeSecurityUsecase{resp: &entity.SecurityEventsResponse{Events: []entity.SecurityEvent{}}}
	app := newSecurityApp(farmUC, secUC)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms/valley-verde/security/events", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 50, secUC.gotLimit)
}

func TestSecurityHandlerInvalidSeverity(t *testing.T) {
	farmUC := &fakeFarmUsecase{farm: &entity.Farm{ID: 1, Slug: "valley-verde"}}
	app := newSecurityApp(farmUC, &fakeSecurityUsecase{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms/valley-verde/security/events?severity=extreme", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body entity.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Invalid severity level", body.Message)
}

func TestSecurityHandlerLimitValidation(t *testing.T) {
	farmUC := &fakeFarmUsecase{farm: &entity.Farm{ID: 1, Slug: "valley-verde"}}
	app := newSecurityApp(farmUC, &fakeSecurityUsecase{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/farms/valley-verde/security/events?limit=1000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
