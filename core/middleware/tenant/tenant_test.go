package tenant_test

import (
	"net/http/httptest"
	"testing"

	"inventory-manager/core/middleware/tenant"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(tenant.New())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(tenant.FromCtx(c))
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("header is propagated to handlers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(tenant.Header, "seller-42")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := make([]byte, 16)
		n, _ := resp.Body.Read(body)
		assert.Equal(t, "seller-42", string(body[:n]))
	})
}
