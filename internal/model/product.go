package model

type Product struct {
	BaseModel
	CategoryID  uint      `gorm:"not null;index" json:"category_id" validate:"required"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name" validate:"required"`
	ProductCode string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"product_code" validate:"required"`
	Price       float64   `gorm:"type:decimal(10,2);not null;default:0" json:"price" validate:"gte=0"`
	Status      int       `gorm:"not null;default:1" json:"status"`

	// User who created this product
	UserID    uint  `gorm:"not null;index" json:"user_id"`
	CreatedBy *User `gorm:"foreignKey:UserID" json:"created_by,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
