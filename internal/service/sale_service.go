package service

import (
	"errors"
	"strings"

	"go-lottery-admin/internal/authz"
	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"
	"go-lottery-admin/internal/ws"
	"go-lottery-admin/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrSaleNotFound     = errors.New("sale not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type SaleService interface {
	Create(identity authz.Identity, req *CreateSaleRequest) (*model.Sale, error)
	List(identity authz.Identity, filter repository.SaleFilter) (*SaleList, error)
	GetByID(identity authz.Identity, id uint) (*model.Sale, error)
	Update(identity authz.Identity, id uint, req *UpdateSaleRequest) (*model.Sale, error)
	Delete(identity authz.Identity, id uint) error
	Report(identity authz.Identity, filter repository.SaleFilter) (*SaleReport, error)
}

type CreateSaleRequest struct {
	Name       string  `json:"name" validate:"required"`
	Desc       string  `json:"desc"`
	Qty        int     `json:"qty" validate:"omitempty,gte=1"`
	Price      float64 `json:"price" validate:"gte=0"`
	CategoryID uint    `json:"category_id" validate:"required"`
}

// UpdateSaleRequest carries partial updates; nil fields are left untouched
type UpdateSaleRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=1"`
	Desc       *string  `json:"desc"`
	Qty        *int     `json:"qty" validate:"omitempty,gte=1"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	CategoryID *uint    `json:"category_id"`
}

type SaleList struct {
	Count      int          `json:"count"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	TotalPages int64        `json:"total_pages"`
	Sales      []model.Sale `json:"sales"`
}

type SaleReport struct {
	SaleList
	Summary repository.SaleSummary `json:"summary"`
}

type saleService struct {
	saleRepo     repository.SaleRepository
	categoryRepo repository.CategoryRepository
	hub          *ws.Hub
}

func NewSaleService(saleRepo repository.SaleRepository, categoryRepo repository.CategoryRepository, hub *ws.Hub) SaleService {
	return &saleService{saleRepo: saleRepo, categoryRepo: categoryRepo, hub: hub}
}

func (s *saleService) publish(action string, identity authz.Identity, sale *model.Sale) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(ws.Event{
		Resource: "sales",
		Action:   action,
		Actor:    identity.Name,
		Data:     sale,
	})
}

func (s *saleService) Create(identity authz.Identity, req *CreateSaleRequest) (*model.Sale, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return nil, ErrCategoryNotFound
	}

	qty := req.Qty
	if qty == 0 {
		qty = 1
	}

	// Owner is always the caller; a caller-supplied user_id is never honored
	sale := &model.Sale{
		Name:       strings.TrimSpace(req.Name),
		Desc:       strings.TrimSpace(req.Desc),
		Qty:        qty,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		UserID:     identity.ID,
	}

	if err := s.saleRepo.Create(sale); err != nil {
		return nil, err
	}

	created, err := s.saleRepo.FindByID(sale.ID)
	if err != nil {
		return nil, err
	}

	s.publish("created", identity, created)
	return created, nil
}

func (s *saleService) List(identity authz.Identity, filter repository.SaleFilter) (*SaleList, error) {
	// Non-admin callers only ever see their own rows
	authz.ScopeToOwner(identity, &filter)

	sales, total, err := s.saleRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}
	return newSaleList(sales, total, filter), nil
}

func newSaleList(sales []model.Sale, total int64, filter repository.SaleFilter) *SaleList {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return &SaleList{
		Count:      len(sales),
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Sales:      sales,
	}
}

// GetByID masks other users' rows as not-found for non-admin callers, so a
// read cannot be used to probe which IDs exist.
func (s *saleService) GetByID(identity authz.Identity, id uint) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	if err := authz.CheckOwner(identity, sale.UserID); err != nil {
		return nil, ErrSaleNotFound
	}
	return sale, nil
}

func (s *saleService) Update(identity authz.Identity, id uint, req *UpdateSaleRequest) (*model.Sale, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}

	// Ownership is checked before any field is touched; on deny the row is
	// untouched and the error is distinct from not-found
	if err := authz.CheckOwner(identity, sale.UserID); err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
		sale.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		sale.Name = strings.TrimSpace(*req.Name)
	}
	if req.Desc != nil {
		sale.Desc = strings.TrimSpace(*req.Desc)
	}
	if req.Qty != nil {
		sale.Qty = *req.Qty
	}
	if req.Price != nil {
		sale.Price = *req.Price
	}

	if err := s.saleRepo.Update(sale); err != nil {
		return nil, err
	}

	updated, err := s.saleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	s.publish("updated", identity, updated)
	return updated, nil
}

func (s *saleService) Delete(identity authz.Identity, id uint) error {
	sale, err := s.saleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSaleNotFound
		}
		return err
	}

	if err := authz.CheckOwner(identity, sale.UserID); err != nil {
		return err
	}

	if err := s.saleRepo.Delete(id); err != nil {
		return err
	}

	s.publish("deleted", identity, sale)
	return nil
}

func (s *saleService) Report(identity authz.Identity, filter repository.SaleFilter) (*SaleReport, error) {
	authz.ScopeToOwner(identity, &filter)

	sales, total, err := s.saleRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}
	summary, err := s.saleRepo.Summary(filter)
	if err != nil {
		return nil, err
	}

	return &SaleReport{
		SaleList: *newSaleList(sales, total, filter),
		Summary:  *summary,
	}, nil
}
