package reconciliation

import (
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature bundles the reconciliation service and its HTTP surface for
// the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature wires the repository, stock adapters and service together.
// client may be nil when no object storage is configured; report export
// is then disabled.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Feature {
	repo := NewRepository(db)
	stock := inventory.NewAdapters(db)

	var reports *ReportWriter
	if client != nil {
		reports = NewReportWriter(client, bucket)
	}

	service := NewService(repo, stock, reports, logger)
	return &Feature{handler: NewHandler(service, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "reconciliation"
}

// Register mounts the feature routes.
func (f *Feature) Register(router fiber.Router) error {
	f.handler.RegisterRoutes(router)
	return nil
}
