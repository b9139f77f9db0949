package inventory_test

import (
	"context"
	"testing"

	"inventory-manager/core/apperror"
	"inventory-manager/core/database"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Material{}, &models.FinishedPiece{}))
	return db
}

func TestForType(t *testing.T) {
	adapters := inventory.NewAdapters(setupDB(t))

	_, err := adapters.ForType(inventory.ItemTypeMaterial)
	assert.NoError(t, err)

	_, err = adapters.ForType(inventory.ItemTypePiece)
	assert.NoError(t, err)

	_, err = adapters.ForType(inventory.ItemType("gadget"))
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestMaterialLookup(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&models.Material{
		TenantID:      "seller-1",
		Name:          "Sterling silver wire",
		Unit:          "m",
		StockQuantity: 20,
		UnitCostCents: 150,
	}).Error)

	adapters := inventory.NewAdapters(db)
	adapter, err := adapters.ForType(inventory.ItemTypeMaterial)
	require.NoError(t, err)

	stock, err := adapter.Lookup(context.Background(), "seller-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Sterling silver wire", stock.Name)
	assert.Equal(t, "m", stock.Unit)
	assert.Equal(t, 20.0, stock.Quantity)
	assert.Equal(t, int64(150), stock.UnitCostCents)
}

func TestLookupIsTenantScoped(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&models.Material{TenantID: "seller-1", Name: "Clay"}).Error)

	adapters := inventory.NewAdapters(db)
	adapter, _ := adapters.ForType(inventory.ItemTypeMaterial)

	_, err := adapter.Lookup(context.Background(), "seller-2", 1)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestSetStockIsAbsoluteAndIdempotent(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&models.FinishedPiece{
		TenantID:      "seller-1",
		Name:          "Ceramic mug",
		StockQuantity: 7,
	}).Error)

	adapters := inventory.NewAdapters(db)
	adapter, _ := adapters.ForType(inventory.ItemTypePiece)

	require.NoError(t, adapter.SetStock(context.Background(), "seller-1", 1, 5))
	// Applying the same absolute value again must be a no-op.
	require.NoError(t, adapter.SetStock(context.Background(), "seller-1", 1, 5))

	var p models.FinishedPiece
	require.NoError(t, db.First(&p, 1).Error)
	assert.Equal(t, 5.0, p.StockQuantity)
}

func TestSetStockUnknownRecord(t *testing.T) {
	adapters := inventory.NewAdapters(setupDB(t))
	adapter, _ := adapters.ForType(inventory.ItemTypePiece)

	err := adapter.SetStock(context.Background(), "seller-1", 99, 5)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// The commit loop relies on SetStock writing an absolute value. Verify
// the generated SQL is a plain UPDATE of stock_quantity, not an
// increment.
func TestSetStockSQL(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `materials` SET `stock_quantity`=.+WHERE tenant_id = \\? AND id = \\?").
		WithArgs(18.0, sqlmock.AnyArg(), "seller-1", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	adapters := inventory.NewAdapters(db)
	adapter, _ := adapters.ForType(inventory.ItemTypeMaterial)

	err := adapter.SetStock(context.Background(), "seller-1", 3, 18)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
