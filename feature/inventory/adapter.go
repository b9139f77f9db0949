package inventory

import (
	"context"
	"errors"

	"inventory-manager/core/apperror"
	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
)

// ItemType identifies the kind of inventory record an operation targets.
type ItemType string

const (
	ItemTypeMaterial ItemType = "material"
	ItemTypePiece    ItemType = "piece"
)

// IsValid checks if the item type is known.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeMaterial, ItemTypePiece:
		return true
	}
	return false
}

// Stock is a point-in-time snapshot of a single inventory record.
type Stock struct {
	Name          string
	Unit          string
	Quantity      float64
	UnitCostCents int64
}

// StockAdapter reads and writes live stock for one item kind.
//
// SetStock writes an absolute quantity, never a delta, so retrying a
// write after a partial failure is a no-op once it has landed.
type StockAdapter interface {
	// Lookup returns the current stock snapshot for the record, scoped
	// by tenant. Missing records surface as apperror.NotFound.
	Lookup(ctx context.Context, tenantID string, itemID uint) (*Stock, error)
	// SetStock applies an absolute stock value to the record.
	SetStock(ctx context.Context, tenantID string, itemID uint, quantity float64) error
}

// StockProvider selects the adapter for an item type.
type StockProvider interface {
	ForType(t ItemType) (StockAdapter, error)
}

// Adapters is the database-backed StockProvider, with one adapter per
// item kind selected by tag rather than by runtime type inspection.
type Adapters struct {
	material StockAdapter
	piece    StockAdapter
}

// NewAdapters creates the adapter set over the given database.
func NewAdapters(db *gorm.DB) *Adapters {
	return &Adapters{
		material: &materialAdapter{db: db},
		piece:    &pieceAdapter{db: db},
	}
}

// ForType returns the adapter for the item type.
func (a *Adapters) ForType(t ItemType) (StockAdapter, error) {
	switch t {
	case ItemTypeMaterial:
		return a.material, nil
	case ItemTypePiece:
		return a.piece, nil
	default:
		return nil, apperror.Validation("unknown item type: " + string(t))
	}
}

type materialAdapter struct {
	db *gorm.DB
}

func (a *materialAdapter) Lookup(ctx context.Context, tenantID string, itemID uint) (*Stock, error) {
	var m models.Material
	err := a.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, itemID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("material not found")
		}
		return nil, apperror.Internal("failed to read material stock", err)
	}

	return &Stock{
		Name:          m.Name,
		Unit:          m.Unit,
		Quantity:      m.StockQuantity,
		UnitCostCents: m.UnitCostCents,
	}, nil
}

func (a *materialAdapter) SetStock(ctx context.Context, tenantID string, itemID uint, quantity float64) error {
	res := a.db.WithContext(ctx).
		Model(&models.Material{}).
		Where("tenant_id = ? AND id = ?", tenantID, itemID).
		Update("stock_quantity", quantity)
	if res.Error != nil {
		return apperror.Internal("failed to write material stock", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("material not found")
	}
	return nil
}

type pieceAdapter struct {
	db *gorm.DB
}

func (a *pieceAdapter) Lookup(ctx context.Context, tenantID string, itemID uint) (*Stock, error) {
	var p models.FinishedPiece
	err := a.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, itemID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("piece not found")
		}
		return nil, apperror.Internal("failed to read piece stock", err)
	}

	return &Stock{
		Name:          p.Name,
		Unit:          "piece",
		Quantity:      p.StockQuantity,
		UnitCostCents: p.UnitCostCents,
	}, nil
}

func (a *pieceAdapter) SetStock(ctx context.Context, tenantID string, itemID uint, quantity float64) error {
	res := a.db.WithContext(ctx).
		Model(&models.FinishedPiece{}).
		Where("tenant_id = ? AND id = ?", tenantID, itemID).
		Update("stock_quantity", quantity)
	if res.Error != nil {
		return apperror.Internal("failed to write piece stock", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound("piece not found")
	}
	return nil
}
