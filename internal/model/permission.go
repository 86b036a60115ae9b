package model

// Permission is one cell of the grant matrix: what a role may do on a page.
// At most one row exists per (role_id, page_id); the unique index is the
// concurrency safeguard for create-or-update races.
type Permission struct {
	BaseModel
	RoleID uint `gorm:"not null;uniqueIndex:idx_permissions_role_page" json:"role_id" validate:"required"`
	PageID uint `gorm:"not null;uniqueIndex:idx_permissions_role_page" json:"page_id" validate:"required"`
	View   bool `gorm:"not null;default:false" json:"view"`
	Add    bool `gorm:"not null;default:false" json:"add"`
	Edit   bool `gorm:"not null;default:false" json:"edit"`
	Del    bool `gorm:"not null;default:false" json:"del"`

	Role *Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"role,omitempty"`
	Page *Page `gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE" json:"page,omitempty"`
}

func (Permission) TableName() string {
	return "permissions"
}
