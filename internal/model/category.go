package model

type Category struct {
	BaseModel
	CategoryName  string `gorm:"type:varchar(255);not null" json:"category_name" validate:"required"`
	CategoryImage string `gorm:"type:varchar(500)" json:"category_image,omitempty"`
	Status        int    `gorm:"not null;default:1" json:"status"`

	TimeSlots []TimeSlot `gorm:"foreignKey:CategoryID" json:"time_slots,omitempty"`
	Products  []Product  `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
