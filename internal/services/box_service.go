package services

import (
	"Shelved/internal/models"
	"Shelved/internal/repository"
)

type BoxService interface {
	CreateBox(name, location, category, description string) (*models.Box, error)
	GetBoxByID(id uint) (*models.Box, error)
	UpdateBox(id uint, name, location, category, description string) (*models.Box, error)
	DeleteBox(id uint) error
	ListBoxes(query, locationEq, categoryEq string) []models.Box
	CloseBox()
}

type boxServiceImpl struct {
	boxRepo repository.BoxRepository
	catalog CatalogService
}

func NewBoxService(boxRepo repository.BoxRepository, catalog CatalogService) BoxService {
	return &boxServiceImpl{boxRepo: boxRepo, catalog: catalog}
}

func (s *boxServiceImpl) CreateBox(name, location, category, description string) (*models.Box, error) {
	box := &models.Box{Name: name, Location: location, Category: category, Description: description}
	if err := s.boxRepo.Create(box); err != nil {
		return nil, err
	}
	s.catalog.PrependBox(*box)
	return box, nil
}

func (s *boxServiceImpl) GetBoxByID(id uint) (*models.Box, error) {
	if box, ok := s.catalog.FindBox(id); ok {
		return box, nil
	}
	return s.boxRepo.FindByID(id)
}

func (s *boxServiceImpl) UpdateBox(id uint, name, location, category, description string) (*models.Box, error) {
	err := s.boxRepo.UpdateFields(id, map[string]interface{}{
		"name":        name,
		"location":    location,
		"category":    category,
		"description": description,
	})
	if err != nil {
		return nil, err
	}
	box, err := s.boxRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.catalog.ReplaceBox(*box)
	return box, nil
}

func (s *boxServiceImpl) DeleteBox(id uint) error {
	if err := s.boxRepo.Delete(id); err != nil {
		return err
	}
	s.catalog.RemoveBox(id)
	return nil
}

func (s *boxServiceImpl) ListBoxes(query, locationEq, categoryEq string) []models.Box {
	return FilterBoxes(s.catalog.Boxes(), query, locationEq, categoryEq)
}

func (s *boxServiceImpl) CloseBox() {
	s.catalog.CloseBox()
}
