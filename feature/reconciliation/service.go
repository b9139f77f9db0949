package reconciliation

import (
	"context"
	"fmt"
	"time"

	"inventory-manager/core/apperror"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/reconciliation/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Service orchestrates the reconciliation lifecycle. It is the sole
// mutator of reconciliation state; every operation is scoped by tenant.
type Service struct {
	repo    *Repository
	stock   inventory.StockProvider
	reports *ReportWriter
	logger  *zap.Logger
}

// NewService creates a new reconciliation service. reports may be nil,
// in which case completion skips the audit report export.
func NewService(repo *Repository, stock inventory.StockProvider, reports *ReportWriter, logger *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		stock:   stock,
		reports: reports,
		logger:  logger,
	}
}

// Create starts a new stock-count session for the tenant. It has no
// preconditions: several in-progress reconciliations may coexist, the
// engine only guarantees that completion stays safe under that overlap.
func (s *Service) Create(ctx context.Context, tenantID, name string) (*models.Reconciliation, error) {
	rec := &models.Reconciliation{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		Name:     name,
		Status:   models.StatusInProgress,
		Items:    []models.ReconciliationItem{},
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation created",
		zap.String("tenant_id", tenantID),
		zap.String("reconciliation_id", rec.ID),
	)
	return rec, nil
}

// Get returns a single reconciliation with its items.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*models.Reconciliation, error) {
	return s.repo.Get(ctx, tenantID, id)
}

// Current returns the tenant's most recent in-progress reconciliation.
// This backs the UI convention of resuming an open count instead of
// starting a new one; it is a query, not an engine invariant.
func (s *Service) Current(ctx context.Context, tenantID string) (*models.Reconciliation, error) {
	return s.repo.FindInProgress(ctx, tenantID)
}

// ListParams filters and paginates List.
type ListParams struct {
	Status models.Status
	Limit  int
	Offset int
}

// ListResult is one page of reconciliations plus the total count for
// the filter.
type ListResult struct {
	Items []models.Reconciliation `json:"items"`
	Total int64                   `json:"total"`
}

// List returns a page of the tenant's reconciliations, newest first.
func (s *Service) List(ctx context.Context, tenantID string, params ListParams) (*ListResult, error) {
	if params.Status != "" && !params.Status.IsValid() {
		return nil, apperror.Validation("unknown status filter: " + string(params.Status))
	}
	if params.Limit <= 0 {
		params.Limit = defaultPageSize
	}
	if params.Limit > maxPageSize {
		params.Limit = maxPageSize
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	items, total, err := s.repo.List(ctx, tenantID, params.Status, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return &ListResult{Items: items, Total: total}, nil
}

// AddItem enrolls an inventory record into the reconciliation. The live
// stock is snapshotted as the expected quantity; the counted quantity
// starts out equal to it. The underlying record is not modified.
func (s *Service) AddItem(ctx context.Context, tenantID, reconciliationID string, itemType inventory.ItemType, itemRef uint) (*models.Reconciliation, error) {
	rec, err := s.repo.Get(ctx, tenantID, reconciliationID)
	if err != nil {
		return nil, err
	}
	if rec.Status != models.StatusInProgress {
		return nil, apperror.InvalidState("Reconciliation not in progress")
	}

	adapter, err := s.stock.ForType(itemType)
	if err != nil {
		return nil, err
	}
	snap, err := adapter.Lookup(ctx, tenantID, itemRef)
	if err != nil {
		return nil, err
	}

	item := &models.ReconciliationItem{
		ID:               uuid.NewString(),
		ReconciliationID: rec.ID,
		ItemType:         itemType,
		ItemRef:          itemRef,
		ItemName:         snap.Name,
		Unit:             snap.Unit,
		ExpectedQuantity: snap.Quantity,
		ActualQuantity:   snap.Quantity,
		Discrepancy:      0,
		UnitCostCents:    snap.UnitCostCents,
		AdjustmentCents:  0,
	}

	// Insert and total recompute share a transaction: if the status
	// guard loses against a concurrent complete/cancel, the enrollment
	// rolls back with it.
	err = s.repo.Transaction(ctx, func(tx *Repository) error {
		if err := tx.CreateItem(ctx, item); err != nil {
			return err
		}
		items, err := tx.ListItems(ctx, rec.ID)
		if err != nil {
			return err
		}
		return tx.SetTotalIfInProgress(ctx, tenantID, rec.ID, TotalAdjustmentCents(items))
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, tenantID, reconciliationID)
}

// UpdateItemParams carries a counted quantity plus optional reason and
// notes. Nil leaves a field untouched; an empty string clears it.
type UpdateItemParams struct {
	ActualQuantity   float64
	AdjustmentReason *string
	Notes            *string
}

// UpdateItem records a counted quantity for an enrolled item and
// recomputes its discrepancy, adjustment value and the aggregate total.
//
// A nonzero discrepancy without a reason is accepted here so that
// counting stays cheap and resumable; the missing reason blocks
// completion instead.
func (s *Service) UpdateItem(ctx context.Context, tenantID, reconciliationID, itemID string, params UpdateItemParams) (*models.Reconciliation, error) {
	if params.ActualQuantity < 0 {
		return nil, apperror.Validation("Actual quantity cannot be negative")
	}
	if params.AdjustmentReason != nil && *params.AdjustmentReason != "" {
		if !models.AdjustmentReason(*params.AdjustmentReason).IsValid() {
			return nil, apperror.Validation("unknown adjustment reason: " + *params.AdjustmentReason)
		}
	}

	err := s.repo.Transaction(ctx, func(tx *Repository) error {
		rec, err := tx.Get(ctx, tenantID, reconciliationID)
		if err != nil {
			return err
		}
		if rec.Status != models.StatusInProgress {
			return apperror.InvalidState("Reconciliation not in progress")
		}

		item, err := tx.GetItem(ctx, rec.ID, itemID)
		if err != nil {
			return err
		}

		item.ActualQuantity = params.ActualQuantity
		item.Discrepancy = Discrepancy(item.ExpectedQuantity, item.ActualQuantity)
		item.AdjustmentCents = AdjustmentCents(item.Discrepancy, item.UnitCostCents)
		if params.AdjustmentReason != nil {
			item.AdjustmentReason = models.AdjustmentReason(*params.AdjustmentReason)
		}
		if params.Notes != nil {
			item.Notes = *params.Notes
		}

		if err := tx.SaveItem(ctx, item); err != nil {
			return err
		}

		items, err := tx.ListItems(ctx, rec.ID)
		if err != nil {
			return err
		}
		return tx.SetTotalIfInProgress(ctx, tenantID, rec.ID, TotalAdjustmentCents(items))
	})
	if err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, tenantID, reconciliationID)
}

// Complete commits the counted quantities back to live inventory and
// closes the reconciliation.
//
// The commit is validate-first: all policy checks run before any stock
// write. The writes themselves are absolute SetStock calls; if one fails
// the record stays in_progress and the whole completion can be retried
// safely, because re-applying an absolute value is a no-op. The status
// flip at the end is a compare-and-set, so of two concurrent completion
// attempts exactly one succeeds and the other observes InvalidState.
//
// Note for operators: the counted quantity is committed as the new
// truth. Stock changes made by orders between enrollment and completion
// are overwritten, not merged.
func (s *Service) Complete(ctx context.Context, tenantID, id string) (*models.Reconciliation, error) {
	rec, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if rec.Status != models.StatusInProgress {
		return nil, apperror.InvalidState("Reconciliation not in progress")
	}

	// Pure validation pass, no I/O.
	for _, item := range rec.Items {
		if item.Discrepancy != 0 && item.AdjustmentReason == "" {
			return nil, apperror.Validation(fmt.Sprintf(
				"Item %q has a nonzero discrepancy and no adjustment reason", item.ItemName))
		}
	}

	// Commit pass. A failure part-way leaves earlier writes in place;
	// that is safe because they are absolute values and the record is
	// still in_progress, so the caller retries the whole completion.
	for _, item := range rec.Items {
		adapter, err := s.stock.ForType(item.ItemType)
		if err != nil {
			return nil, err
		}
		if err := adapter.SetStock(ctx, tenantID, item.ItemRef, item.ActualQuantity); err != nil {
			s.logger.Error("Stock commit failed, reconciliation stays in progress",
				zap.String("tenant_id", tenantID),
				zap.String("reconciliation_id", id),
				zap.String("item_id", item.ID),
				zap.Error(err),
			)
			return nil, apperror.Internal("failed to commit stock adjustment", err)
		}
	}

	if err := s.repo.TransitionStatus(ctx, tenantID, id, models.StatusCompleted, time.Now().UTC()); err != nil {
		return nil, err
	}

	rec, err = s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation completed",
		zap.String("tenant_id", tenantID),
		zap.String("reconciliation_id", id),
		zap.Int("items", len(rec.Items)),
		zap.Int64("total_adjustment_cents", rec.TotalAdjustmentCents),
	)

	// Audit report export is best-effort: the completion already
	// happened and must not be failed retroactively.
	if s.reports != nil {
		if _, err := s.reports.Write(ctx, rec); err != nil {
			s.logger.Warn("Audit report export failed",
				zap.String("reconciliation_id", id),
				zap.Error(err),
			)
		}
	}

	return rec, nil
}

// Cancel discards the count. No stock is touched; the record becomes
// terminal and immutable.
func (s *Service) Cancel(ctx context.Context, tenantID, id string) (*models.Reconciliation, error) {
	if _, err := s.repo.Get(ctx, tenantID, id); err != nil {
		return nil, err
	}

	if err := s.repo.TransitionStatus(ctx, tenantID, id, models.StatusCancelled, time.Now().UTC()); err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation cancelled",
		zap.String("tenant_id", tenantID),
		zap.String("reconciliation_id", id),
	)

	return s.repo.Get(ctx, tenantID, id)
}

// Delete removes a reconciliation entirely. Completed reconciliations
// are retained as the audit trail of applied corrections and cannot be
// deleted; in-progress and cancelled ones can.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := s.repo.Get(ctx, tenantID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, tenantID, id)
}
