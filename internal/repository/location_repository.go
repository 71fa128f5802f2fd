package repository

import (
	"Shelved/internal/models"

	"gorm.io/gorm"
)

type LocationRepository interface {
	GenericRepository[models.Location]
	FindAllByName() ([]models.Location, error)
}

type LocationRepositoryImpl[T models.Location] struct {
	GenericRepository[models.Location]
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &LocationRepositoryImpl[models.Location]{
		GenericRepository: NewGenericRepository[models.Location](db),
		db:                db,
	}
}

// Delete removes the row for good. A soft-deleted name would keep holding the
// unique index and block the name from ever being created again.
func (r *LocationRepositoryImpl[T]) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Location{}, id).Error
}

func (r *LocationRepositoryImpl[T]) FindAllByName() ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Order("name ASC").Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
