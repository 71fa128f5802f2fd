package repository

import (
	"Shelved/internal/models"

	"gorm.io/gorm"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	FindAllNewestFirst() ([]models.Box, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	PurgeDeleted() (int64, error)
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

func (r *BoxRepositoryImpl[T]) FindAllNewestFirst() ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Order("created_at DESC").Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

func (r *BoxRepositoryImpl[T]) UpdateFields(id uint, fields map[string]interface{}) error {
	res := r.db.Model(&models.Box{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeDeleted hard-deletes soft-deleted boxes together with their items.
func (r *BoxRepositoryImpl[T]) PurgeDeleted() (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Unscoped().Model(&models.Box{}).
			Where("deleted_at IS NOT NULL").Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Unscoped().Where("box_id IN ?", ids).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Where("id IN ?", ids).Delete(&models.Box{})
		count = res.RowsAffected
		return res.Error
	})
	return count, err
}
