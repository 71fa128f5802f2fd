package repository

import (
	"Shelved/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupBoxTestDB() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	err := db.AutoMigrate(&models.Box{}, &models.Item{})
	if err != nil {
		return nil
	}
	return db
}

func TestBoxRepository_Create(t *testing.T) {
	db := setupBoxTestDB()
	boxRepo := NewBoxRepository(db)

	box := &models.Box{Name: "Tools", Location: "Garage", Category: "Hardware"}
	err := boxRepo.Create(box)

	assert.NoError(t, err)
	assert.NotZero(t, box.ID)
	assert.False(t, box.CreatedAt.IsZero())
}

func TestBoxRepository_FindAllNewestFirst(t *testing.T) {
	db := setupBoxTestDB()
	boxRepo := NewBoxRepository(db)

	old := &models.Box{Name: "Old", Location: "Attic", Category: "Misc"}
	old.CreatedAt = time.Now().Add(-time.Hour)
	assert.NoError(t, boxRepo.Create(old))
	recent := &models.Box{Name: "Recent", Location: "Garage", Category: "Hardware"}
	assert.NoError(t, boxRepo.Create(recent))

	boxes, err := boxRepo.FindAllNewestFirst()

	assert.NoError(t, err)
	assert.Len(t, boxes, 2)
	assert.Equal(t, "Recent", boxes[0].Name)
	assert.Equal(t, "Old", boxes[1].Name)
}

func TestBoxRepository_UpdateFields(t *testing.T) {
	db := setupBoxTestDB()
	boxRepo := NewBoxRepository(db)

	box := &models.Box{Name: "Tools", Location: "Garage", Category: "Hardware"}
	assert.NoError(t, boxRepo.Create(box))

	err := boxRepo.UpdateFields(box.ID, map[string]interface{}{
		"name":        "Hand Tools",
		"location":    "Basement",
		"category":    "Hardware",
		"description": "screwdrivers",
	})
	assert.NoError(t, err)

	updated, err := boxRepo.FindByID(box.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Hand Tools", updated.Name)
	assert.Equal(t, "Basement", updated.Location)
	assert.Equal(t, "screwdrivers", updated.Description)
}

func TestBoxRepository_UpdateFields_Missing(t *testing.T) {
	db := setupBoxTestDB()
	boxRepo := NewBoxRepository(db)

	err := boxRepo.UpdateFields(99, map[string]interface{}{"name": "nope"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBoxRepository_Delete(t *testing.T) {
	db := setupBoxTestDB()
	boxRepo := NewBoxRepository(db)

	box := &models.Box{Name: "To Delete", Location: "Garage", Category: "Misc"}
	assert.NoError(t, boxRepo.Create(box))

	err := boxRepo.Delete(box.ID)
	assert.NoError(t, err)

	_, err = boxRepo.FindByID(box.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBoxRepository_PurgeDeleted(t *testing.T) {
	db := setupBoxTestDB()
	boxRepo := NewBoxRepository(db)
	itemRepo := NewItemRepository(db)

	box := &models.Box{Name: "Tools", Location: "Garage", Category: "Hardware"}
	assert.NoError(t, boxRepo.Create(box))
	item := &models.Item{BoxID: box.ID, Name: "Hammer", Quantity: 2}
	assert.NoError(t, itemRepo.Create(item))
	keep := &models.Box{Name: "Keep", Location: "Attic", Category: "Misc"}
	assert.NoError(t, boxRepo.Create(keep))

	assert.NoError(t, boxRepo.Delete(box.ID))

	purged, err := boxRepo.PurgeDeleted()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	var boxCount, itemCount int64
	db.Unscoped().Model(&models.Box{}).Count(&boxCount)
	db.Unscoped().Model(&models.Item{}).Count(&itemCount)
	assert.Equal(t, int64(1), boxCount)
	assert.Equal(t, int64(0), itemCount)
}
