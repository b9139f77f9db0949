package models

import (
	"time"

	"inventory-manager/feature/inventory"
)

// Status is the lifecycle state of a reconciliation.
//
// in_progress is the only state with outgoing transitions; completed and
// cancelled are terminal and the record is immutable once it reaches them.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsValid checks if the status is known.
func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// AdjustmentReason is the enumerated reason attached to a counted
// discrepancy. Policy requires one on every nonzero-discrepancy item
// before the reconciliation can be completed.
type AdjustmentReason string

const (
	ReasonMiscount AdjustmentReason = "miscount"
	ReasonDamaged  AdjustmentReason = "damaged"
	ReasonLost     AdjustmentReason = "lost"
	ReasonFound    AdjustmentReason = "found"
	ReasonTheft    AdjustmentReason = "theft"
	ReasonExpired  AdjustmentReason = "expired"
	ReasonOther    AdjustmentReason = "other"
)

// IsValid checks if the reason is one of the enumerated codes.
func (r AdjustmentReason) IsValid() bool {
	switch r {
	case ReasonMiscount, ReasonDamaged, ReasonLost, ReasonFound,
		ReasonTheft, ReasonExpired, ReasonOther:
		return true
	}
	return false
}

// Reconciliation is a bounded stock-count session scoped to one tenant.
type Reconciliation struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	TenantID string `gorm:"size:64;index:idx_recon_tenant" json:"tenant_id"`
	Name     string `gorm:"size:255" json:"name"`
	Status   Status `gorm:"size:16;index:idx_recon_status" json:"status"`

	// TotalAdjustmentCents is the signed monetary aggregate across items,
	// in integer minor-currency units. It is recomputed from item state
	// whenever an item changes, never adjusted incrementally.
	TotalAdjustmentCents int64 `json:"total_adjustment_cents"`

	Items []ReconciliationItem `gorm:"foreignKey:ReconciliationID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// TableName overrides the default table name.
func (Reconciliation) TableName() string {
	return "reconciliations"
}

// ReconciliationItem is one enrolled inventory record within a
// reconciliation.
//
// The (reconciliation, item_type, item_ref) triple carries a composite
// unique index so that enrolling the same record twice fails at the
// storage layer even under concurrent requests.
type ReconciliationItem struct {
	ID               string             `gorm:"primaryKey;size:36" json:"id"`
	ReconciliationID string             `gorm:"size:36;uniqueIndex:idx_recon_item,priority:1" json:"reconciliation_id"`
	ItemType         inventory.ItemType `gorm:"size:16;uniqueIndex:idx_recon_item,priority:2" json:"item_type"`
	ItemRef          uint               `gorm:"uniqueIndex:idx_recon_item,priority:3" json:"item_id"`

	// ItemName and Unit are display snapshots taken at enrollment.
	ItemName string `gorm:"size:255" json:"item_name"`
	Unit     string `gorm:"size:32" json:"unit"`

	// ExpectedQuantity is the live stock at the moment of enrollment.
	// It is the baseline being audited and is never recomputed, even if
	// live stock changes afterwards.
	ExpectedQuantity float64 `json:"expected_quantity"`
	// ActualQuantity is the counted quantity; it defaults to
	// ExpectedQuantity until the counter records a value.
	ActualQuantity float64 `json:"actual_quantity"`
	// Discrepancy is always ActualQuantity - ExpectedQuantity; it is
	// stored for querying but rewritten on every mutation.
	Discrepancy float64 `json:"discrepancy"`

	// UnitCostCents is the unit cost snapshot used for adjustment value;
	// zero means the cost is unknown and the item carries no value.
	UnitCostCents int64 `json:"unit_cost_cents"`
	// AdjustmentCents is the signed monetary impact of the discrepancy.
	AdjustmentCents int64 `json:"adjustment_cents"`

	AdjustmentReason AdjustmentReason `gorm:"size:32" json:"adjustment_reason,omitempty"`
	Notes            string           `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the default table name.
func (ReconciliationItem) TableName() string {
	return "reconciliation_items"
}
