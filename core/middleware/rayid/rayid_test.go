package rayid_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"demo-server/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(rayid.FromCtx(c))
	})
	return app
}

func TestNew_GeneratesID(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get(rayid.HeaderName)
	_, err = uuid.Parse(header)
	assert.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, header, string(body))
}

func TestNew_KeepsClientID(t *testing.T) {
	app := setupApp()
	id := uuid.NewString()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, id)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, id, resp.Header.Get(rayid.HeaderName))
}

func TestNew_ReplacesMalformedID(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "<script>")
	resp, err := app.Test(req)
	require.NoError(t, err)

	header := resp.Header.Get(rayid.HeaderName)
	assert.NotEqual(t, "<script>", header)
	_, err = uuid.Parse(header)
	assert.NoError(t, err)
}
