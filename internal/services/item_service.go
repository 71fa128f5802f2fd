package services

import (
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"errors"
	"strings"
)

// ErrEmptyItemName is returned before any store call when an item name is
// blank after trimming.
var ErrEmptyItemName = errors.New("item name must not be empty")

type ItemService interface {
	LoadItems(box models.Box) ([]models.Item, error)
	AddItem(boxID uint, name string, quantity int) (*models.Item, error)
	ToggleItem(id uint) (*models.Item, error)
	DeleteItem(id uint) error
}

type itemServiceImpl struct {
	itemRepo repository.ItemRepository
	catalog  CatalogService
}

func NewItemService(itemRepo repository.ItemRepository, catalog CatalogService) ItemService {
	return &itemServiceImpl{itemRepo: itemRepo, catalog: catalog}
}

// LoadItems opens the box as the current detail view and replaces its
// checklist. The generation token from OpenBox guards against a slow fetch
// clobbering the checklist of a box opened in the meantime.
func (s *itemServiceImpl) LoadItems(box models.Box) ([]models.Item, error) {
	gen := s.catalog.OpenBox(box)
	items, err := s.itemRepo.FindByBoxID(box.ID)
	if err != nil {
		return nil, err
	}
	s.catalog.SetItems(gen, items)
	return items, nil
}

func (s *itemServiceImpl) AddItem(boxID uint, name string, quantity int) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyItemName
	}
	if quantity < 1 {
		quantity = 1
	}
	item := &models.Item{BoxID: boxID, Name: name, Quantity: quantity}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	s.catalog.AppendItem(*item)
	return item, nil
}

func (s *itemServiceImpl) ToggleItem(id uint) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	checked := !item.Checked
	if err := s.itemRepo.SetChecked(id, checked); err != nil {
		return nil, err
	}
	item.Checked = checked
	s.catalog.ReplaceItem(*item)
	return item, nil
}

func (s *itemServiceImpl) DeleteItem(id uint) error {
	if err := s.itemRepo.Delete(id); err != nil {
		return err
	}
	s.catalog.RemoveItem(id)
	return nil
}
