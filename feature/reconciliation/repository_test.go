package reconciliation_test

import (
	"context"
	"testing"
	"time"

	"inventory-manager/core/apperror"
	"inventory-manager/core/database"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/reconciliation"
	"inventory-manager/feature/reconciliation/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepository(t *testing.T) (*reconciliation.Repository, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Reconciliation{}, &models.ReconciliationItem{}))
	return reconciliation.NewRepository(db), db
}

func newRecord(tenantID string, status models.Status) *models.Reconciliation {
	return &models.Reconciliation{
		ID:       uuid.NewString(),
		TenantID: tenantID,
		Status:   status,
	}
}

func TestRepositoryTenantScoping(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	rec := newRecord("seller-1", models.StatusInProgress)
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.Get(ctx, "seller-1", rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	_, err = repo.Get(ctx, "seller-2", rec.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestRepositoryDuplicateItem(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	rec := newRecord("seller-1", models.StatusInProgress)
	require.NoError(t, repo.Create(ctx, rec))

	item := &models.ReconciliationItem{
		ID:               uuid.NewString(),
		ReconciliationID: rec.ID,
		ItemType:         inventory.ItemTypeMaterial,
		ItemRef:          3,
	}
	require.NoError(t, repo.CreateItem(ctx, item))

	dup := &models.ReconciliationItem{
		ID:               uuid.NewString(),
		ReconciliationID: rec.ID,
		ItemType:         inventory.ItemTypeMaterial,
		ItemRef:          3,
	}
	err := repo.CreateItem(ctx, dup)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	// Same ref in another session is a separate enrollment.
	other := newRecord("seller-1", models.StatusInProgress)
	require.NoError(t, repo.Create(ctx, other))
	require.NoError(t, repo.CreateItem(ctx, &models.ReconciliationItem{
		ID:               uuid.NewString(),
		ReconciliationID: other.ID,
		ItemType:         inventory.ItemTypeMaterial,
		ItemRef:          3,
	}))
}

func TestRepositoryTransitionStatusCAS(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	rec := newRecord("seller-1", models.StatusInProgress)
	require.NoError(t, repo.Create(ctx, rec))

	now := time.Now()
	require.NoError(t, repo.TransitionStatus(ctx, "seller-1", rec.ID, models.StatusCompleted, now))

	got, err := repo.Get(ctx, "seller-1", rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)

	// The losing side of a double termination.
	err = repo.TransitionStatus(ctx, "seller-1", rec.ID, models.StatusCancelled, time.Now())
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))

	err = repo.TransitionStatus(ctx, "seller-1", rec.ID, models.Status("archived"), time.Now())
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestRepositorySetTotalIfInProgress(t *testing.T) {
	repo, _ := setupRepository(t)
	ctx := context.Background()

	rec := newRecord("seller-1", models.StatusInProgress)
	require.NoError(t, repo.Create(ctx, rec))
	require.NoError(t, repo.SetTotalIfInProgress(ctx, "seller-1", rec.ID, -300))

	require.NoError(t, repo.TransitionStatus(ctx, "seller-1", rec.ID, models.StatusCancelled, time.Now()))

	err := repo.SetTotalIfInProgress(ctx, "seller-1", rec.ID, -500)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))

	got, err := repo.Get(ctx, "seller-1", rec.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-300), got.TotalAdjustmentCents)
}

func TestRepositoryDeleteGuards(t *testing.T) {
	repo, db := setupRepository(t)
	ctx := context.Background()

	t.Run("completed refused", func(t *testing.T) {
		rec := newRecord("seller-1", models.StatusInProgress)
		require.NoError(t, repo.Create(ctx, rec))
		require.NoError(t, repo.TransitionStatus(ctx, "seller-1", rec.ID, models.StatusCompleted, time.Now()))

		err := repo.Delete(ctx, "seller-1", rec.ID)
		assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
	})

	t.Run("missing is not found", func(t *testing.T) {
		err := repo.Delete(ctx, "seller-1", "nope")
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	t.Run("items removed with the record", func(t *testing.T) {
		rec := newRecord("seller-1", models.StatusInProgress)
		require.NoError(t, repo.Create(ctx, rec))
		require.NoError(t, repo.CreateItem(ctx, &models.ReconciliationItem{
			ID:               uuid.NewString(),
			ReconciliationID: rec.ID,
			ItemType:         inventory.ItemTypeMaterial,
			ItemRef:          1,
		}))

		require.NoError(t, repo.Delete(ctx, "seller-1", rec.ID))

		var count int64
		require.NoError(t, db.Model(&models.ReconciliationItem{}).
			Where("reconciliation_id = ?", rec.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestRepositoryListStaleInProgress(t *testing.T) {
	repo, db := setupRepository(t)
	ctx := context.Background()

	stale := newRecord("seller-1", models.StatusInProgress)
	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, db.Model(&models.Reconciliation{}).
		Where("id = ?", stale.ID).
		Update("created_at", time.Now().Add(-48*time.Hour)).Error)

	fresh := newRecord("seller-2", models.StatusInProgress)
	require.NoError(t, repo.Create(ctx, fresh))

	done := newRecord("seller-1", models.StatusInProgress)
	require.NoError(t, repo.Create(ctx, done))
	require.NoError(t, db.Model(&models.Reconciliation{}).
		Where("id = ?", done.ID).
		Updates(map[string]any{
			"status":     models.StatusCompleted,
			"created_at": time.Now().Add(-48 * time.Hour),
		}).Error)

	recs, err := repo.ListStaleInProgress(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, stale.ID, recs[0].ID)
}
