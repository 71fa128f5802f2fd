package models

type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null;unique" json:"name"`
}
