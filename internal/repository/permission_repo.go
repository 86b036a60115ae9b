package repository

import (
	"go-lottery-admin/internal/model"

	"gorm.io/gorm"
)

type PermissionRepository interface {
	FindAll() ([]model.Permission, error)
	FindByID(id uint) (*model.Permission, error)
	FindByRole(roleID uint) ([]model.Permission, error)
	FindByRoleAndPage(roleID, pageID uint) (*model.Permission, error)
	Create(permission *model.Permission) error
	Update(permission *model.Permission) error
	Delete(id uint) error
	DeleteByRole(roleID uint) error
}

type permissionRepo struct {
	db *gorm.DB
}

func NewPermissionRepo(db *gorm.DB) PermissionRepository {
	return &permissionRepo{db: db}
}

func (r *permissionRepo) FindAll() ([]model.Permission, error) {
	var permissions []model.Permission
	err := r.db.Preload("Role").Preload("Page").
		Order("role_id ASC, page_id ASC").
		Find(&permissions).Error
	return permissions, err
}

func (r *permissionRepo) FindByID(id uint) (*model.Permission, error) {
	var permission model.Permission
	if err := r.db.Preload("Role").Preload("Page").First(&permission, id).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepo) FindByRole(roleID uint) ([]model.Permission, error) {
	var permissions []model.Permission
	err := r.db.Preload("Page").
		Where("role_id = ?", roleID).
		Order("page_id ASC").
		Find(&permissions).Error
	return permissions, err
}

func (r *permissionRepo) FindByRoleAndPage(roleID, pageID uint) (*model.Permission, error) {
	var permission model.Permission
	if err := r.db.Where("role_id = ? AND page_id = ?", roleID, pageID).First(&permission).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepo) Create(permission *model.Permission) error {
	return r.db.Create(permission).Error
}

func (r *permissionRepo) Update(permission *model.Permission) error {
	return r.db.Save(permission).Error
}

func (r *permissionRepo) Delete(id uint) error {
	return r.db.Delete(&model.Permission{}, id).Error
}

func (r *permissionRepo) DeleteByRole(roleID uint) error {
	return r.db.Where("role_id = ?", roleID).Delete(&model.Permission{}).Error
}
