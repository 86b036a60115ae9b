package model

// Role represents user roles in the system
type Role struct {
	BaseModel
	Name string `gorm:"column:role;type:varchar(255);not null" json:"role" validate:"required"`

	Users       []User       `gorm:"foreignKey:RoleID" json:"users,omitempty"`
	Permissions []Permission `gorm:"foreignKey:RoleID" json:"permissions,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Seeded role IDs. Authorization decisions compare role IDs, never role name
// strings (role names are editable data).
const (
	RoleAdminID uint = 1
	RoleUserID  uint = 2
)

// DefaultRoles defines the roles seeded at startup
var DefaultRoles = []Role{
	{BaseModel: BaseModel{ID: RoleAdminID}, Name: "admin"},
	{BaseModel: BaseModel{ID: RoleUserID}, Name: "user"},
}
