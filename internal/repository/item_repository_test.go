package repository

import (
	"Shelved/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupItemTestDB() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	err := db.AutoMigrate(&models.Box{}, &models.Item{})
	if err != nil {
		return nil
	}
	return db
}

func TestItemRepository_FindByBoxID(t *testing.T) {
	db := setupItemTestDB()
	itemRepo := NewItemRepository(db)

	first := &models.Item{BoxID: 1, Name: "Hammer", Quantity: 2}
	first.CreatedAt = time.Now().Add(-time.Minute)
	assert.NoError(t, itemRepo.Create(first))
	second := &models.Item{BoxID: 1, Name: "Wrench", Quantity: 1}
	assert.NoError(t, itemRepo.Create(second))
	other := &models.Item{BoxID: 2, Name: "Plates", Quantity: 6}
	assert.NoError(t, itemRepo.Create(other))

	items, err := itemRepo.FindByBoxID(1)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Hammer", items[0].Name)
	assert.Equal(t, "Wrench", items[1].Name)
}

func TestItemRepository_SetChecked(t *testing.T) {
	db := setupItemTestDB()
	itemRepo := NewItemRepository(db)

	item := &models.Item{BoxID: 1, Name: "Hammer", Quantity: 1}
	assert.NoError(t, itemRepo.Create(item))

	assert.NoError(t, itemRepo.SetChecked(item.ID, true))
	found, err := itemRepo.FindByID(item.ID)
	assert.NoError(t, err)
	assert.True(t, found.Checked)

	assert.NoError(t, itemRepo.SetChecked(item.ID, false))
	found, err = itemRepo.FindByID(item.ID)
	assert.NoError(t, err)
	assert.False(t, found.Checked)
}

func TestItemRepository_SetChecked_Missing(t *testing.T) {
	db := setupItemTestDB()
	itemRepo := NewItemRepository(db)

	err := itemRepo.SetChecked(42, true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_PurgeDeleted(t *testing.T) {
	db := setupItemTestDB()
	itemRepo := NewItemRepository(db)

	item := &models.Item{BoxID: 1, Name: "Hammer", Quantity: 1}
	assert.NoError(t, itemRepo.Create(item))
	keep := &models.Item{BoxID: 1, Name: "Wrench", Quantity: 1}
	assert.NoError(t, itemRepo.Create(keep))
	assert.NoError(t, itemRepo.Delete(item.ID))

	purged, err := itemRepo.PurgeDeleted()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	var count int64
	db.Unscoped().Model(&models.Item{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
