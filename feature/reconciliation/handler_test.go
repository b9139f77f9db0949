package reconciliation_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-manager/core/database"
	"inventory-manager/core/middleware/tenant"
	invmodels "inventory-manager/feature/inventory/models"
	"inventory-manager/feature/reconciliation"
	"inventory-manager/feature/reconciliation/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&invmodels.Material{},
		&invmodels.FinishedPiece{},
		&models.Reconciliation{},
		&models.ReconciliationItem{},
	))

	app := fiber.New()
	app.Use(tenant.New())

	feature := reconciliation.NewFeature(db, nil, "", zap.NewNop())
	require.NoError(t, feature.Register(app))

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, tenantID string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tenantID != "" {
		req.Header.Set("X-Tenant-ID", tenantID)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeRec(t *testing.T, resp *http.Response) models.Reconciliation {
	t.Helper()
	var rec models.Reconciliation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	return rec
}

func decodeError(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandlerRequiresTenant(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/reconciliations", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandlerLifecycle(t *testing.T) {
	app, db := setupApp(t)

	mat := invmodels.Material{TenantID: "seller-1", Name: "Clay", Unit: "kg", StockQuantity: 20, UnitCostCents: 150}
	require.NoError(t, db.Create(&mat).Error)

	resp := doJSON(t, app, fiber.MethodPost, "/reconciliations", "seller-1",
		map[string]string{"name": "Monthly Check"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	rec := decodeRec(t, resp)
	assert.Equal(t, models.StatusInProgress, rec.Status)

	resp = doJSON(t, app, fiber.MethodPost, "/reconciliations/"+rec.ID+"/items", "seller-1",
		map[string]any{"item_type": "material", "item_id": mat.ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rec = decodeRec(t, resp)
	require.Len(t, rec.Items, 1)
	assert.Equal(t, 20.0, rec.Items[0].ExpectedQuantity)

	itemPath := fmt.Sprintf("/reconciliations/%s/items/%s", rec.ID, rec.Items[0].ID)
	resp = doJSON(t, app, fiber.MethodPatch, itemPath, "seller-1",
		map[string]any{"actual_quantity": 18, "adjustment_reason": "damaged"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rec = decodeRec(t, resp)
	assert.Equal(t, int64(-300), rec.TotalAdjustmentCents)

	resp = doJSON(t, app, fiber.MethodPost, "/reconciliations/"+rec.ID+"/complete", "seller-1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rec = decodeRec(t, resp)
	assert.Equal(t, models.StatusCompleted, rec.Status)

	var m invmodels.Material
	require.NoError(t, db.First(&m, mat.ID).Error)
	assert.Equal(t, 18.0, m.StockQuantity)

	resp = doJSON(t, app, fiber.MethodGet, "/reconciliations/"+rec.ID, "seller-1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/reconciliations/"+rec.ID, "seller-1", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_state", decodeError(t, resp)["code"])
}

func TestHandlerValidation(t *testing.T) {
	app, db := setupApp(t)

	mat := invmodels.Material{TenantID: "seller-1", Name: "Clay", Unit: "kg", StockQuantity: 20}
	require.NoError(t, db.Create(&mat).Error)

	resp := doJSON(t, app, fiber.MethodPost, "/reconciliations", "seller-1", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	rec := decodeRec(t, resp)

	t.Run("unknown item type", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/reconciliations/"+rec.ID+"/items", "seller-1",
			map[string]any{"item_type": "gadget", "item_id": mat.ID})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "validation_error", decodeError(t, resp)["code"])
	})

	t.Run("missing counted quantity", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/reconciliations/"+rec.ID+"/items", "seller-1",
			map[string]any{"item_type": "material", "item_id": mat.ID})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		withItem := decodeRec(t, resp)

		itemPath := fmt.Sprintf("/reconciliations/%s/items/%s", rec.ID, withItem.Items[0].ID)
		resp = doJSON(t, app, fiber.MethodPatch, itemPath, "seller-1",
			map[string]any{"adjustment_reason": "damaged"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown inventory record", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/reconciliations/"+rec.ID+"/items", "seller-1",
			map[string]any{"item_type": "piece", "item_id": 1})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("duplicate enrollment", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/reconciliations/"+rec.ID+"/items", "seller-1",
			map[string]any{"item_type": "material", "item_id": mat.ID})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "conflict", decodeError(t, resp)["code"])
	})
}

func TestHandlerNotFoundMapping(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/reconciliations/nope", "seller-1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", decodeError(t, resp)["code"])

	resp = doJSON(t, app, fiber.MethodGet, "/reconciliations/current", "seller-1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandlerCancelAndReport(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/reconciliations", "seller-1", nil)
	rec := decodeRec(t, resp)

	resp = doJSON(t, app, fiber.MethodPost, "/reconciliations/"+rec.ID+"/cancel", "seller-1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rec = decodeRec(t, resp)
	assert.Equal(t, models.StatusCancelled, rec.Status)

	resp = doJSON(t, app, fiber.MethodPost, "/reconciliations/"+rec.ID+"/cancel", "seller-1", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Storage is not configured in this setup.
	resp = doJSON(t, app, fiber.MethodGet, "/reconciliations/"+rec.ID+"/report", "seller-1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/reconciliations/"+rec.ID, "seller-1", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
