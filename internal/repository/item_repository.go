package repository

import (
	"Shelved/internal/models"

	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	FindByBoxID(boxID uint) ([]models.Item, error)
	SetChecked(id uint, checked bool) error
	PurgeDeleted() (int64, error)
}

type ItemRepositoryImpl[T models.Item] struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

// FindByBoxID returns a box's checklist in creation order.
func (r *ItemRepositoryImpl[T]) FindByBoxID(boxID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("box_id = ?", boxID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl[T]) SetChecked(id uint, checked bool) error {
	res := r.db.Model(&models.Item{}).Where("id = ?", id).Update("checked", checked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ItemRepositoryImpl[T]) PurgeDeleted() (int64, error) {
	res := r.db.Unscoped().Where("deleted_at IS NOT NULL").Delete(&models.Item{})
	return res.RowsAffected, res.Error
}
