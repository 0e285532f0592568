package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theobroma-digital/geo-api/entity"
)

func TestHealthHandlerRoot(t *testing.T) {
	app := fiber.New()
	NewHealthHandler(nil).Register(app)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body entity.APIInfo
	decodeBody(t, resp, &body)
	assert.Equal(t, "Theobroma Digital API", body.Message)
	assert.Equal(t, apiVersion, body.Version)
	assert.NotEmpty(t, body.Endpoints)
}
