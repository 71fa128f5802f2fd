package repository

import (
	"Shelved/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	GenericRepository[models.Category]
	FindAllByName() ([]models.Category, error)
}

type CategoryRepositoryImpl[T models.Category] struct {
	GenericRepository[models.Category]
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl[models.Category]{
		GenericRepository: NewGenericRepository[models.Category](db),
		db:                db,
	}
}

// Delete removes the row for good, freeing the name for re-creation.
func (r *CategoryRepositoryImpl[T]) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Category{}, id).Error
}

func (r *CategoryRepositoryImpl[T]) FindAllByName() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
