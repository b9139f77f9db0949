package reconciliation

import (
	"io"

	"inventory-manager/core/apperror"
	"inventory-manager/core/logger"
	"inventory-manager/core/middleware/tenant"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/reconciliation/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler translates HTTP requests into service calls. It owns no
// business rules: tenant scoping, body validation and error-to-status
// mapping only.
type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconciliations")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/current", h.HandleCurrent)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
	group.Post("/:id/items", h.HandleAddItem)
	group.Patch("/:id/items/:itemId", h.HandleUpdateItem)
	group.Post("/:id/complete", h.HandleComplete)
	group.Post("/:id/cancel", h.HandleCancel)
	group.Get("/:id/report", h.HandleGetReport)
}

type createRequest struct {
	Name string `json:"name" validate:"max=255"`
}

type addItemRequest struct {
	ItemType string `json:"item_type" validate:"required,oneof=material piece"`
	ItemID   uint   `json:"item_id" validate:"required"`
}

type updateItemRequest struct {
	ActualQuantity   *float64 `json:"actual_quantity" validate:"required,gte=0"`
	AdjustmentReason *string  `json:"adjustment_reason" validate:"omitempty,oneof=miscount damaged lost found theft expired other"`
	Notes            *string  `json:"notes"`
}

func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	status := apperror.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		l := logger.WithTenant(logger.WithRayID(h.logger, c), tenant.FromCtx(c))
		l.Error("Request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"code":  string(apperror.KindOf(err)),
		"error": err.Error(),
	})
}

func (h *Handler) parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.Validation("malformed request body")
	}
	if err := h.validate.Struct(out); err != nil {
		return apperror.Validation(err.Error())
	}
	return nil
}

// HandleCreate starts a new reconciliation.
// @Summary Create Reconciliation
// @Description Start a new stock-count session for the tenant.
// @Tags reconciliations
// @Accept json
// @Produce json
// @Param request body createRequest false "Optional name"
// @Success 201 {object} models.Reconciliation
// @Failure 400 {object} map[string]string
// @Router /reconciliations [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := h.parseBody(c, &req); err != nil {
			return h.respondError(c, err)
		}
	}

	rec, err := h.service.Create(c.Context(), tenant.FromCtx(c), req.Name)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// HandleList returns a page of reconciliations with the total count.
// @Summary List Reconciliations
// @Tags reconciliations
// @Produce json
// @Param status query string false "Filter by status (in_progress, completed, cancelled)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} ListResult
// @Router /reconciliations [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	params := ListParams{
		Status: models.Status(c.Query("status")),
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}

	result, err := h.service.List(c.Context(), tenant.FromCtx(c), params)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(result)
}

// HandleCurrent returns the tenant's open reconciliation, if any.
// @Summary Get Current Reconciliation
// @Description Return the most recent in-progress reconciliation, so counting can be resumed.
// @Tags reconciliations
// @Produce json
// @Success 200 {object} models.Reconciliation
// @Failure 404 {object} map[string]string
// @Router /reconciliations/current [get]
func (h *Handler) HandleCurrent(c *fiber.Ctx) error {
	rec, err := h.service.Current(c.Context(), tenant.FromCtx(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(rec)
}

// HandleGet returns a single reconciliation.
// @Summary Get Reconciliation
// @Tags reconciliations
// @Produce json
// @Param id path string true "Reconciliation ID"
// @Success 200 {object} models.Reconciliation
// @Failure 404 {object} map[string]string
// @Router /reconciliations/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	rec, err := h.service.Get(c.Context(), tenant.FromCtx(c), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(rec)
}

// HandleDelete removes a reconciliation (not allowed once completed).
// @Summary Delete Reconciliation
// @Tags reconciliations
// @Param id path string true "Reconciliation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reconciliations/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), tenant.FromCtx(c), c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAddItem enrolls an inventory record into the count.
// @Summary Add Item
// @Description Snapshot the live stock of a material or piece and enroll it.
// @Tags reconciliations
// @Accept json
// @Produce json
// @Param id path string true "Reconciliation ID"
// @Param request body addItemRequest true "Item reference"
// @Success 200 {object} models.Reconciliation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reconciliations/{id}/items [post]
func (h *Handler) HandleAddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.respondError(c, err)
	}

	rec, err := h.service.AddItem(c.Context(), tenant.FromCtx(c), c.Params("id"),
		inventory.ItemType(req.ItemType), req.ItemID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(rec)
}

// HandleUpdateItem records a counted quantity for an enrolled item.
// @Summary Update Item
// @Tags reconciliations
// @Accept json
// @Produce json
// @Param id path string true "Reconciliation ID"
// @Param itemId path string true "Item ID"
// @Param request body updateItemRequest true "Counted quantity"
// @Success 200 {object} models.Reconciliation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reconciliations/{id}/items/{itemId} [patch]
func (h *Handler) HandleUpdateItem(c *fiber.Ctx) error {
	var req updateItemRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.respondError(c, err)
	}

	rec, err := h.service.UpdateItem(c.Context(), tenant.FromCtx(c), c.Params("id"), c.Params("itemId"),
		UpdateItemParams{
			ActualQuantity:   *req.ActualQuantity,
			AdjustmentReason: req.AdjustmentReason,
			Notes:            req.Notes,
		})
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(rec)
}

// HandleComplete commits the counted quantities to live inventory.
// @Summary Complete Reconciliation
// @Tags reconciliations
// @Produce json
// @Param id path string true "Reconciliation ID"
// @Success 200 {object} models.Reconciliation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reconciliations/{id}/complete [post]
func (h *Handler) HandleComplete(c *fiber.Ctx) error {
	rec, err := h.service.Complete(c.Context(), tenant.FromCtx(c), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(rec)
}

// HandleCancel discards the count without touching stock.
// @Summary Cancel Reconciliation
// @Tags reconciliations
// @Produce json
// @Param id path string true "Reconciliation ID"
// @Success 200 {object} models.Reconciliation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reconciliations/{id}/cancel [post]
func (h *Handler) HandleCancel(c *fiber.Ctx) error {
	rec, err := h.service.Cancel(c.Context(), tenant.FromCtx(c), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(rec)
}

// HandleGetReport streams the exported audit report for a completed
// reconciliation.
// @Summary Get Audit Report
// @Tags reconciliations
// @Produce json
// @Param id path string true "Reconciliation ID"
// @Success 200 {object} Report
// @Failure 404 {object} map[string]string
// @Router /reconciliations/{id}/report [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	tenantID := tenant.FromCtx(c)

	// Confirm the reconciliation exists for this tenant before touching
	// storage; report object names are guessable.
	rec, err := h.service.Get(c.Context(), tenantID, c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	if h.service.reports == nil {
		return h.respondError(c, apperror.NotFound("report export is not configured"))
	}

	reader, err := h.service.reports.Open(c.Context(), tenantID, rec.ID)
	if err != nil {
		return h.respondError(c, apperror.NotFound("report not found"))
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return h.respondError(c, apperror.Internal("failed to read report", err))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}
