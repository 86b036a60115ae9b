package model

// Page names a protected resource group subject to permission checks
// (not an HTML page).
type Page struct {
	BaseModel
	Name string `gorm:"column:page;type:varchar(255);not null" json:"page" validate:"required"`

	Permissions []Permission `gorm:"foreignKey:PageID" json:"permissions,omitempty"`
}

func (Page) TableName() string {
	return "pages"
}

// Page names used by the route gates. Must match the seeded rows.
const (
	PageDashboard  = "Dashboard"
	PageCategories = "Categories"
	PageProducts   = "Products"
	PageSales      = "Sales"
	PageReports    = "Reports"
	PageUsers      = "Users"
	PageRoles      = "Roles & Permissions"
)

// DefaultPages defines the pages seeded at startup
var DefaultPages = []string{
	PageDashboard,
	PageCategories,
	PageProducts,
	PageSales,
	PageReports,
	PageUsers,
	PageRoles,
}
