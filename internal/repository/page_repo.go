package repository

import (
	"errors"

	"go-lottery-admin/internal/model"

	"gorm.io/gorm"
)

type PageRepository interface {
	FindAll() ([]model.Page, error)
	FindByID(id uint) (*model.Page, error)
	FindByName(name string) (*model.Page, error)
	Create(page *model.Page) error
	Update(page *model.Page) error
	Delete(id uint) error
	SeedDefaults() error
}

type pageRepo struct {
	db *gorm.DB
}

func NewPageRepo(db *gorm.DB) PageRepository {
	return &pageRepo{db: db}
}

func (r *pageRepo) FindAll() ([]model.Page, error) {
	var pages []model.Page
	err := r.db.Order("id ASC").Find(&pages).Error
	return pages, err
}

func (r *pageRepo) FindByID(id uint) (*model.Page, error) {
	var page model.Page
	if err := r.db.First(&page, id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepo) FindByName(name string) (*model.Page, error) {
	var page model.Page
	if err := r.db.Where("page = ?", name).First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepo) Create(page *model.Page) error {
	return r.db.Create(page).Error
}

func (r *pageRepo) Update(page *model.Page) error {
	return r.db.Save(page).Error
}

// Delete removes the page together with its permission rows. SQLite does not
// enforce the FK cascade by default, so the cascade is explicit.
func (r *pageRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("page_id = ?", id).Delete(&model.Permission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Page{}, id).Error
	})
}

// SeedDefaults creates the default pages if they don't exist
func (r *pageRepo) SeedDefaults() error {
	for _, name := range model.DefaultPages {
		var existing model.Page
		err := r.db.Where("page = ?", name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.db.Create(&model.Page{Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
