package dto

type ItemCreateDTO struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,gte=1"`
}
