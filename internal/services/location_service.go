package services

import (
	"Shelved/internal/models"
	"Shelved/internal/repository"
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("name must not be empty")

type LocationService interface {
	AddLocation(name string) (*models.Location, error)
	ListLocations() []models.Location
	DeleteLocation(id uint) error
}

type locationServiceImpl struct {
	locationRepo repository.LocationRepository
	catalog      CatalogService
}

func NewLocationService(locationRepo repository.LocationRepository, catalog CatalogService) LocationService {
	return &locationServiceImpl{locationRepo: locationRepo, catalog: catalog}
}

func (s *locationServiceImpl) AddLocation(name string) (*models.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	location := &models.Location{Name: name}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, err
	}
	s.catalog.AddLocation(*location)
	return location, nil
}

func (s *locationServiceImpl) ListLocations() []models.Location {
	return s.catalog.Locations()
}

// DeleteLocation removes the vocabulary entry only; boxes carrying the name
// keep it as free text.
func (s *locationServiceImpl) DeleteLocation(id uint) error {
	if err := s.locationRepo.Delete(id); err != nil {
		return err
	}
	s.catalog.RemoveLocation(id)
	return nil
}
