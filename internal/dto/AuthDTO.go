package dto

type AuthDTO struct {
	Password string `json:"password" validate:"required"`
}
