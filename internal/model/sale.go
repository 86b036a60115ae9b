package model

// Sale is a sales entry. Rows are owned by the user who created them
// (UserID); non-admin callers may only see and modify their own rows.
type Sale struct {
	BaseModel
	Name       string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Desc       string    `gorm:"type:text" json:"desc,omitempty"`
	Qty        int       `gorm:"not null;default:1" json:"qty" validate:"gte=1"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price" validate:"gte=0"`
	CategoryID uint      `gorm:"not null;index" json:"category_id" validate:"required"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	CreatedBy  *User     `gorm:"foreignKey:UserID" json:"created_by,omitempty"`
}

func (Sale) TableName() string {
	return "sales"
}
