package dto

import "Shelved/internal/models"

type BoxCreateDTO struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
}

type BoxUpdateDTO struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
}

// BoxDetailDTO is the open detail view: the box plus its checklist.
type BoxDetailDTO struct {
	Box   models.Box    `json:"box"`
	Items []models.Item `json:"items"`
}
