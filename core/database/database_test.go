package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectSQLiteInMemory(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NotNil(t, db)

	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestConnectTranslatesDuplicateKey(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	type row struct {
		ID   uint   `gorm:"primaryKey"`
		Code string `gorm:"uniqueIndex"`
	}
	require.NoError(t, db.AutoMigrate(&row{}))

	require.NoError(t, db.Create(&row{Code: "a"}).Error)
	err = db.Create(&row{Code: "a"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
