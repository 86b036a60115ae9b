package model

import "time"

// TimeSlot is a bookable date+time window within a category.
// Administered exclusively by admins; not part of the permission matrix.
type TimeSlot struct {
	BaseModel
	CategoryID uint      `gorm:"not null;index" json:"category_id" validate:"required"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SlotDate   time.Time `gorm:"type:date;not null;index" json:"-" validate:"required"`
	SlotTime   string    `gorm:"type:varchar(8);not null" json:"slot_time" validate:"required"`
	Status     int       `gorm:"not null;default:1" json:"status"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}

// TimeSlotResponse for API responses (date formatted as YYYY-MM-DD)
type TimeSlotResponse struct {
	ID         uint      `json:"id"`
	CategoryID uint      `json:"category_id"`
	Category   *Category `json:"category,omitempty"`
	SlotDate   string    `json:"slot_date"`
	SlotTime   string    `json:"slot_time"`
	Status     int       `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToResponse converts TimeSlot to TimeSlotResponse
func (t *TimeSlot) ToResponse() TimeSlotResponse {
	return TimeSlotResponse{
		ID:         t.ID,
		CategoryID: t.CategoryID,
		Category:   t.Category,
		SlotDate:   t.SlotDate.Format("2006-01-02"),
		SlotTime:   t.SlotTime,
		Status:     t.Status,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
