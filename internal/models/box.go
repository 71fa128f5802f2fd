package models

// Box is a physical storage container. Location and Category hold a copy of
// the vocabulary name at creation time; there is no foreign key on purpose,
// so deleting a vocabulary entry leaves existing boxes untouched.
type Box struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Location    string `gorm:"type:varchar(255);not null" json:"location"`
	Category    string `gorm:"type:varchar(255);not null" json:"category"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Items       []Item `gorm:"foreignKey:BoxID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
