package models

import "time"

// Material is a raw material a seller keeps in stock (yarn, clay,
// sheet silver). Quantities are fractional because materials are
// measured in units like metres or grams.
type Material struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TenantID      string    `gorm:"size:64;index:idx_materials_tenant" json:"tenant_id"`
	Name          string    `gorm:"size:255" json:"name"`
	Unit          string    `gorm:"size:32" json:"unit"`
	StockQuantity float64   `json:"stock_quantity"`
	UnitCostCents int64     `json:"unit_cost_cents"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides the default table name.
func (Material) TableName() string {
	return "materials"
}

// FinishedPiece is a completed item listed (or listable) on the seller's
// storefront. Stock is counted in whole pieces but shares the quantity
// representation with materials so the reconciliation engine can treat
// both kinds uniformly.
type FinishedPiece struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TenantID      string    `gorm:"size:64;index:idx_pieces_tenant" json:"tenant_id"`
	SKU           string    `gorm:"size:64" json:"sku"`
	Name          string    `gorm:"size:255" json:"name"`
	StockQuantity float64   `json:"stock_quantity"`
	UnitCostCents int64     `json:"unit_cost_cents"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides the default table name.
func (FinishedPiece) TableName() string {
	return "finished_pieces"
}
