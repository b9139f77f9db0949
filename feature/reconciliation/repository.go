package reconciliation

import (
	"context"
	"errors"
	"time"

	"inventory-manager/core/apperror"
	"inventory-manager/feature/reconciliation/models"

	"gorm.io/gorm"
)

// Repository persists reconciliation records. Every query is scoped by
// tenant; a record owned by another tenant is indistinguishable from a
// missing one.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over the given database.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Transaction runs fn against a transactional copy of the repository.
func (r *Repository) Transaction(ctx context.Context, fn func(*Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// Create inserts a new reconciliation.
func (r *Repository) Create(ctx context.Context, rec *models.Reconciliation) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return apperror.Internal("failed to create reconciliation", err)
	}
	return nil
}

// Get loads a reconciliation with its items, in enrollment order.
func (r *Repository) Get(ctx context.Context, tenantID, id string) (*models.Reconciliation, error) {
	var rec models.Reconciliation
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("reconciliation_items.created_at ASC, reconciliation_items.id ASC")
		}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("reconciliation not found")
		}
		return nil, apperror.Internal("failed to load reconciliation", err)
	}
	return &rec, nil
}

// FindInProgress returns the tenant's most recent in-progress
// reconciliation, if any.
func (r *Repository) FindInProgress(ctx context.Context, tenantID string) (*models.Reconciliation, error) {
	var rec models.Reconciliation
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("reconciliation_items.created_at ASC, reconciliation_items.id ASC")
		}).
		Where("tenant_id = ? AND status = ?", tenantID, models.StatusInProgress).
		Order("created_at DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("no reconciliation in progress")
		}
		return nil, apperror.Internal("failed to load reconciliation", err)
	}
	return &rec, nil
}

// List returns a page of reconciliations plus the total count for the
// filter, newest first.
func (r *Repository) List(ctx context.Context, tenantID string, status models.Status, limit, offset int) ([]models.Reconciliation, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Reconciliation{}).
		Where("tenant_id = ?", tenantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperror.Internal("failed to count reconciliations", err)
	}

	var recs []models.Reconciliation
	err := q.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error
	if err != nil {
		return nil, 0, apperror.Internal("failed to list reconciliations", err)
	}

	return recs, total, nil
}

// CreateItem enrolls an item. The composite unique index on
// (reconciliation_id, item_type, item_ref) makes this an atomic
// insert-if-absent: a concurrent duplicate enrollment loses here, not
// in application code.
func (r *Repository) CreateItem(ctx context.Context, item *models.ReconciliationItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("Item already added to reconciliation")
		}
		return apperror.Internal("failed to add reconciliation item", err)
	}
	return nil
}

// GetItem loads a single item within a reconciliation.
func (r *Repository) GetItem(ctx context.Context, reconciliationID, itemID string) (*models.ReconciliationItem, error) {
	var item models.ReconciliationItem
	err := r.db.WithContext(ctx).
		Where("reconciliation_id = ? AND id = ?", reconciliationID, itemID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("item not found in reconciliation")
		}
		return nil, apperror.Internal("failed to load reconciliation item", err)
	}
	return &item, nil
}

// ListItems returns all items of a reconciliation in enrollment order.
func (r *Repository) ListItems(ctx context.Context, reconciliationID string) ([]models.ReconciliationItem, error) {
	var items []models.ReconciliationItem
	err := r.db.WithContext(ctx).
		Where("reconciliation_id = ?", reconciliationID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, apperror.Internal("failed to list reconciliation items", err)
	}
	return items, nil
}

// SaveItem persists a mutated item.
func (r *Repository) SaveItem(ctx context.Context, item *models.ReconciliationItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return apperror.Internal("failed to save reconciliation item", err)
	}
	return nil
}

// SetTotalIfInProgress writes the recomputed aggregate, guarded on the
// record still being in progress. Zero rows means an interleaved
// complete/cancel won the race; callers run this inside a transaction so
// the item mutation rolls back with it.
func (r *Repository) SetTotalIfInProgress(ctx context.Context, tenantID, id string, totalCents int64) error {
	res := r.db.WithContext(ctx).
		Model(&models.Reconciliation{}).
		Where("tenant_id = ? AND id = ? AND status = ?", tenantID, id, models.StatusInProgress).
		Update("total_adjustment_cents", totalCents)
	if res.Error != nil {
		return apperror.Internal("failed to update reconciliation total", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.InvalidState("Reconciliation not in progress")
	}
	return nil
}

// TransitionStatus atomically moves the record out of in_progress.
// The conditional update is the compare-and-set that guarantees at most
// one of two concurrent terminations succeeds; the loser sees
// InvalidState.
func (r *Repository) TransitionStatus(ctx context.Context, tenantID, id string, to models.Status, at time.Time) error {
	updates := map[string]any{
		"status":     to,
		"updated_at": at,
	}
	switch to {
	case models.StatusCompleted:
		updates["completed_at"] = at
	case models.StatusCancelled:
		updates["cancelled_at"] = at
	default:
		return apperror.Validation("invalid target status: " + string(to))
	}

	res := r.db.WithContext(ctx).
		Model(&models.Reconciliation{}).
		Where("tenant_id = ? AND id = ? AND status = ?", tenantID, id, models.StatusInProgress).
		Updates(updates)
	if res.Error != nil {
		return apperror.Internal("failed to transition reconciliation status", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.InvalidState("Reconciliation not in progress")
	}
	return nil
}

// Delete removes a reconciliation and its items. Completed records are
// refused; the guard is part of the DELETE itself so a concurrent
// completion cannot slip a just-completed record through.
func (r *Repository) Delete(ctx context.Context, tenantID, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("tenant_id = ? AND id = ? AND status <> ?", tenantID, id, models.StatusCompleted).
			Delete(&models.Reconciliation{})
		if res.Error != nil {
			return apperror.Internal("failed to delete reconciliation", res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Reconciliation{}).
				Where("tenant_id = ? AND id = ?", tenantID, id).
				Count(&count).Error; err != nil {
				return apperror.Internal("failed to check reconciliation", err)
			}
			if count > 0 {
				return apperror.InvalidState("Cannot delete completed reconciliation")
			}
			return apperror.NotFound("reconciliation not found")
		}

		if err := tx.Where("reconciliation_id = ?", id).
			Delete(&models.ReconciliationItem{}).Error; err != nil {
			return apperror.Internal("failed to delete reconciliation items", err)
		}
		return nil
	})
}

// ListStaleInProgress returns in-progress reconciliations, across all
// tenants, that were created before the cutoff. Used by the cleanup
// command.
func (r *Repository) ListStaleInProgress(ctx context.Context, cutoff time.Time) ([]models.Reconciliation, error) {
	var recs []models.Reconciliation
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", models.StatusInProgress, cutoff).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, apperror.Internal("failed to list stale reconciliations", err)
	}
	return recs, nil
}
