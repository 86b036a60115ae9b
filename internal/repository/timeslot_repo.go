package repository

import (
	"time"

	"go-lottery-admin/internal/model"

	"gorm.io/gorm"
)

type TimeSlotRepository interface {
	FindAll() ([]model.TimeSlot, error)
	FindByID(id uint) (*model.TimeSlot, error)
	FindByCategory(categoryID uint) ([]model.TimeSlot, error)
	FindByCategoryDateTime(categoryID uint, slotDate time.Time, slotTime string) (*model.TimeSlot, error)
	Create(slot *model.TimeSlot) error
	Update(slot *model.TimeSlot) error
	Delete(id uint) error
}

type timeSlotRepo struct {
	db *gorm.DB
}

func NewTimeSlotRepo(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepo{db}
}

func (r *timeSlotRepo) FindAll() ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	err := r.db.Preload("Category").
		Order("slot_date ASC, slot_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *timeSlotRepo) FindByID(id uint) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	if err := r.db.Preload("Category").First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepo) FindByCategory(categoryID uint) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	err := r.db.Preload("Category").
		Where("category_id = ?", categoryID).
		Order("slot_date ASC, slot_time ASC").
		Find(&slots).Error
	return slots, err
}

// FindByCategoryDateTime is the duplicate-slot check used before create/update
func (r *timeSlotRepo) FindByCategoryDateTime(categoryID uint, slotDate time.Time, slotTime string) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	err := r.db.Where("category_id = ? AND slot_date = ? AND slot_time = ?",
		categoryID, slotDate, slotTime).First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepo) Create(slot *model.TimeSlot) error {
	return r.db.Create(slot).Error
}

func (r *timeSlotRepo) Update(slot *model.TimeSlot) error {
	return r.db.Save(slot).Error
}

func (r *timeSlotRepo) Delete(id uint) error {
	return r.db.Delete(&model.TimeSlot{}, id).Error
}
