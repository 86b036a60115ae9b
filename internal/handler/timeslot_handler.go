package handler

import (
	"errors"
	"time"

	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TimeSlotHandler administers time slots (admin only)
type TimeSlotHandler struct {
	timeSlotRepo repository.TimeSlotRepository
	categoryRepo repository.CategoryRepository
}

func NewTimeSlotHandler(timeSlotRepo repository.TimeSlotRepository, categoryRepo repository.CategoryRepository) *TimeSlotHandler {
	return &TimeSlotHandler{timeSlotRepo: timeSlotRepo, categoryRepo: categoryRepo}
}

type timeSlotRequest struct {
	CategoryID uint   `json:"category_id"`
	SlotDate   string `json:"slot_date"` // YYYY-MM-DD
	SlotTime   string `json:"slot_time"` // HH:MM or HH:MM:SS
	Status     *int   `json:"status"`
}

func parseSlotTime(raw string) (string, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", errors.New("invalid time format, expected HH:MM or HH:MM:SS")
}

func toSlotResponses(slots []model.TimeSlot) []model.TimeSlotResponse {
	responses := make([]model.TimeSlotResponse, len(slots))
	for i := range slots {
		responses[i] = slots[i].ToResponse()
	}
	return responses
}

// GET /api/timeslots
func (h *TimeSlotHandler) GetTimeSlots(c *fiber.Ctx) error {
	if categoryID := queryUint(c, "category_id"); categoryID != nil {
		slots, err := h.timeSlotRepo.FindByCategory(*categoryID)
		if err != nil {
			return fail(c, 500, "An error occurred while fetching time slots.")
		}
		return success(c, 200, "Time slots fetched successfully", fiber.Map{
			"count":      len(slots),
			"time_slots": toSlotResponses(slots),
		})
	}

	slots, err := h.timeSlotRepo.FindAll()
	if err != nil {
		return fail(c, 500, "An error occurred while fetching time slots.")
	}
	return success(c, 200, "Time slots fetched successfully", fiber.Map{
		"count":      len(slots),
		"time_slots": toSlotResponses(slots),
	})
}

// GET /api/timeslots/:id
func (h *TimeSlotHandler) GetTimeSlot(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid time slot ID")
	}

	slot, err := h.timeSlotRepo.FindByID(id)
	if err != nil {
		return fail(c, 404, "Time slot not found")
	}
	return success(c, 200, "Time slot fetched successfully", fiber.Map{"time_slot": slot.ToResponse()})
}

// POST /api/timeslots
func (h *TimeSlotHandler) CreateTimeSlot(c *fiber.Ctx) error {
	var req timeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	if req.CategoryID == 0 {
		return fail(c, 422, "Category is required")
	}
	if _, err := h.categoryRepo.FindByID(req.CategoryID); err != nil {
		return fail(c, 404, "Category not found")
	}

	slotDate, err := time.Parse("2006-01-02", req.SlotDate)
	if err != nil {
		return fail(c, 422, "Invalid date format, expected YYYY-MM-DD")
	}
	slotTime, err := parseSlotTime(req.SlotTime)
	if err != nil {
		return fail(c, 422, err.Error())
	}

	// One slot per (category, date, time)
	if existing, _ := h.timeSlotRepo.FindByCategoryDateTime(req.CategoryID, slotDate, slotTime); existing != nil {
		return fail(c, 409, "Time slot already exists for this category, date and time")
	}

	slot := &model.TimeSlot{
		CategoryID: req.CategoryID,
		SlotDate:   slotDate,
		SlotTime:   slotTime,
		Status:     1,
	}
	if req.Status != nil {
		slot.Status = *req.Status
	}

	if err := h.timeSlotRepo.Create(slot); err != nil {
		return fail(c, 500, "An error occurred while creating time slot.")
	}
	return success(c, 201, "Time slot created successfully", fiber.Map{"time_slot": slot.ToResponse()})
}

// PUT /api/timeslots/:id
func (h *TimeSlotHandler) UpdateTimeSlot(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid time slot ID")
	}

	slot, err := h.timeSlotRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, 404, "Time slot not found")
		}
		return fail(c, 500, "An error occurred while fetching time slot.")
	}

	var req timeSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Invalid JSON")
	}

	if req.CategoryID != 0 {
		if _, err := h.categoryRepo.FindByID(req.CategoryID); err != nil {
			return fail(c, 404, "Category not found")
		}
		slot.CategoryID = req.CategoryID
	}
	if req.SlotDate != "" {
		slotDate, err := time.Parse("2006-01-02", req.SlotDate)
		if err != nil {
			return fail(c, 422, "Invalid date format, expected YYYY-MM-DD")
		}
		slot.SlotDate = slotDate
	}
	if req.SlotTime != "" {
		slotTime, err := parseSlotTime(req.SlotTime)
		if err != nil {
			return fail(c, 422, err.Error())
		}
		slot.SlotTime = slotTime
	}
	if req.Status != nil {
		slot.Status = *req.Status
	}

	if existing, _ := h.timeSlotRepo.FindByCategoryDateTime(slot.CategoryID, slot.SlotDate, slot.SlotTime); existing != nil && existing.ID != slot.ID {
		return fail(c, 409, "Time slot already exists for this category, date and time")
	}

	if err := h.timeSlotRepo.Update(slot); err != nil {
		return fail(c, 500, "An error occurred while updating time slot.")
	}
	return success(c, 200, "Time slot updated successfully", fiber.Map{"time_slot": slot.ToResponse()})
}

// DELETE /api/timeslots/:id
func (h *TimeSlotHandler) DeleteTimeSlot(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, 400, "Invalid time slot ID")
	}

	if _, err := h.timeSlotRepo.FindByID(id); err != nil {
		return fail(c, 404, "Time slot not found")
	}

	if err := h.timeSlotRepo.Delete(id); err != nil {
		return fail(c, 500, "An error occurred while deleting time slot.")
	}
	return success(c, 200, "Time slot deleted successfully", nil)
}
