package repository

import (
	"Shelved/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupVocabularyTestDB() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	err := db.AutoMigrate(&models.Location{}, &models.Category{})
	if err != nil {
		return nil
	}
	return db
}

func TestLocationRepository_FindAllByName(t *testing.T) {
	db := setupVocabularyTestDB()
	locationRepo := NewLocationRepository(db)

	assert.NoError(t, locationRepo.Create(&models.Location{Name: "Garage"}))
	assert.NoError(t, locationRepo.Create(&models.Location{Name: "Attic"}))
	assert.NoError(t, locationRepo.Create(&models.Location{Name: "Basement"}))

	locations, err := locationRepo.FindAllByName()

	assert.NoError(t, err)
	assert.Len(t, locations, 3)
	assert.Equal(t, "Attic", locations[0].Name)
	assert.Equal(t, "Basement", locations[1].Name)
	assert.Equal(t, "Garage", locations[2].Name)
}

func TestLocationRepository_DuplicateName(t *testing.T) {
	db := setupVocabularyTestDB()
	locationRepo := NewLocationRepository(db)

	assert.NoError(t, locationRepo.Create(&models.Location{Name: "Garage"}))

	err := locationRepo.Create(&models.Location{Name: "Garage"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// rejected insert leaves the list unchanged
	locations, err := locationRepo.FindAllByName()
	assert.NoError(t, err)
	assert.Len(t, locations, 1)
}

func TestLocationRepository_DeleteFreesName(t *testing.T) {
	db := setupVocabularyTestDB()
	locationRepo := NewLocationRepository(db)

	location := &models.Location{Name: "Garage"}
	assert.NoError(t, locationRepo.Create(location))
	assert.NoError(t, locationRepo.Delete(location.ID))

	// the name is free again once the entry is gone
	assert.NoError(t, locationRepo.Create(&models.Location{Name: "Garage"}))

	locations, err := locationRepo.FindAllByName()
	assert.NoError(t, err)
	assert.Len(t, locations, 1)
	assert.Equal(t, "Garage", locations[0].Name)
}

func TestCategoryRepository_FindAllByName(t *testing.T) {
	db := setupVocabularyTestDB()
	categoryRepo := NewCategoryRepository(db)

	assert.NoError(t, categoryRepo.Create(&models.Category{Name: "Tools"}))
	assert.NoError(t, categoryRepo.Create(&models.Category{Name: "Electronics"}))

	categories, err := categoryRepo.FindAllByName()

	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Electronics", categories[0].Name)
	assert.Equal(t, "Tools", categories[1].Name)
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	db := setupVocabularyTestDB()
	categoryRepo := NewCategoryRepository(db)

	assert.NoError(t, categoryRepo.Create(&models.Category{Name: "Tools"}))

	err := categoryRepo.Create(&models.Category{Name: "Tools"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCategoryRepository_Delete(t *testing.T) {
	db := setupVocabularyTestDB()
	categoryRepo := NewCategoryRepository(db)

	category := &models.Category{Name: "Tools"}
	assert.NoError(t, categoryRepo.Create(category))
	assert.NoError(t, categoryRepo.Delete(category.ID))

	categories, err := categoryRepo.FindAllByName()
	assert.NoError(t, err)
	assert.Len(t, categories, 0)

	// the name is free again once the entry is gone
	assert.NoError(t, categoryRepo.Create(&models.Category{Name: "Tools"}))
}
