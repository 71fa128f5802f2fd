package models

// Item is a checklist entry inside a single box.
type Item struct {
	BaseModel
	BoxID    uint   `gorm:"index;not null" json:"box_id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Quantity int    `gorm:"default:1" json:"quantity"`
	Checked  bool   `gorm:"default:false" json:"checked"`
}
