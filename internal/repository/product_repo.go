package repository

import (
	"go-lottery-admin/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	FindAll() ([]model.Product, error)
	FindActive() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByCode(code string) (*model.Product, error)
	FindByCategory(categoryID uint) ([]model.Product, error)
	Create(product *model.Product) error
	Update(product *model.Product) error
	Delete(id uint) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Preload("CreatedBy").
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindActive() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").
		Where("status = ?", 1).
		Order("product_name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("CreatedBy").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByCode(code string) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("product_code = ?", code).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByCategory(categoryID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").
		Where("category_id = ?", categoryID).
		Order("product_name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&model.Product{}, id).Error
}
