package repository

import (
	"time"

	"go-lottery-admin/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaleFilter carries the list/report criteria. UserID is force-pinned to the
// caller for non-admin identities before the filter reaches the repository.
type SaleFilter struct {
	CategoryID *uint
	UserID     *uint
	Search     string
	StartAt    *time.Time
	EndAt      *time.Time
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

// SaleSummary holds aggregate figures for the report and dashboard endpoints
type SaleSummary struct {
	TotalSales   int64   `json:"total_sales"`
	TotalQty     int64   `json:"total_qty"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DailySales is one point of the per-day revenue series
type DailySales struct {
	Date    string  `json:"date"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type SaleRepository interface {
	FindAll(filter SaleFilter) ([]model.Sale, int64, error)
	FindByID(id uint) (*model.Sale, error)
	Create(sale *model.Sale) error
	Update(sale *model.Sale) error
	Delete(id uint) error
	Summary(filter SaleFilter) (*SaleSummary, error)
	DailyRevenue(startAt, endAt time.Time) ([]DailySales, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

var saleSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"price":      true,
	"qty":        true,
}

func (r *saleRepo) scope(filter SaleFilter) *gorm.DB {
	q := r.db.Model(&model.Sale{})
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Search != "" {
		// clause.Like quotes "desc" correctly on every dialect (reserved word)
		pattern := "%" + filter.Search + "%"
		q = q.Where(r.db.
			Where(clause.Like{Column: clause.Column{Name: "name"}, Value: pattern}).
			Or(clause.Like{Column: clause.Column{Name: "desc"}, Value: pattern}))
	}
	if filter.StartAt != nil {
		q = q.Where("created_at >= ?", *filter.StartAt)
	}
	if filter.EndAt != nil {
		q = q.Where("created_at <= ?", *filter.EndAt)
	}
	return q
}

func (r *saleRepo) FindAll(filter SaleFilter) ([]model.Sale, int64, error) {
	var total int64
	if err := r.scope(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := filter.SortBy
	if !saleSortFields[sortBy] {
		sortBy = "created_at"
	}
	order := "DESC"
	if filter.SortOrder == "asc" || filter.SortOrder == "ASC" {
		order = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var sales []model.Sale
	err := r.scope(filter).
		Preload("Category").Preload("CreatedBy").
		Order(sortBy + " " + order).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) FindByID(id uint) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.Preload("Category").Preload("CreatedBy").First(&sale, id).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

func (r *saleRepo) Update(sale *model.Sale) error {
	return r.db.Save(sale).Error
}

func (r *saleRepo) Delete(id uint) error {
	return r.db.Delete(&model.Sale{}, id).Error
}

func (r *saleRepo) Summary(filter SaleFilter) (*SaleSummary, error) {
	var summary SaleSummary
	err := r.scope(filter).
		Select("COUNT(*) as total_sales, COALESCE(SUM(qty), 0) as total_qty, COALESCE(SUM(price * qty), 0) as total_revenue").
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *saleRepo) DailyRevenue(startAt, endAt time.Time) ([]DailySales, error) {
	var results []DailySales

	rows, err := r.db.Model(&model.Sale{}).
		Select("DATE(created_at) as date, COUNT(*) as count, COALESCE(SUM(price * qty), 0) as revenue").
		Where("created_at BETWEEN ? AND ?", startAt, endAt).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data DailySales
		if err := rows.Scan(&data.Date, &data.Count, &data.Revenue); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}
