package repository

import (
	"go-lottery-admin/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll() ([]model.Category, error)
	FindActive() ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
	Create(category *model.Category) error
	Update(category *model.Category) error
	Delete(id uint) error
	CountProducts(categoryID uint) (int64, error)
	CountSales(categoryID uint) (int64, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("category_name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindActive() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Where("status = ?", 1).Order("category_name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(id uint) error {
	return r.db.Delete(&model.Category{}, id).Error
}

func (r *categoryRepo) CountProducts(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *categoryRepo) CountSales(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Sale{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
