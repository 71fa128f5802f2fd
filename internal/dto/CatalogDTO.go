package dto

import "Shelved/internal/models"

type NameDTO struct {
	Name string `json:"name" validate:"required"`
}

type CatalogDTO struct {
	Boxes      []models.Box      `json:"boxes"`
	Locations  []models.Location `json:"locations"`
	Categories []models.Category `json:"categories"`
}
