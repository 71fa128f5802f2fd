package services

import (
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"strings"
)

type CategoryService interface {
	AddCategory(name string) (*models.Category, error)
	ListCategories() []models.Category
	DeleteCategory(id uint) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	catalog      CatalogService
}

func NewCategoryService(categoryRepo repository.CategoryRepository, catalog CatalogService) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo, catalog: catalog}
}

func (s *categoryServiceImpl) AddCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	s.catalog.AddCategory(*category)
	return category, nil
}

func (s *categoryServiceImpl) ListCategories() []models.Category {
	return s.catalog.Categories()
}

func (s *categoryServiceImpl) DeleteCategory(id uint) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.catalog.RemoveCategory(id)
	return nil
}
