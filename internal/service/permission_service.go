package service

import (
	"errors"

	"go-lottery-admin/internal/authz"
	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"
	"go-lottery-admin/pkg/validator"

	"gorm.io/gorm"
)

var ErrPageNotFound = errors.New("page not found")

type PermissionService interface {
	GetAll() ([]model.Permission, error)
	GetByRole(roleID uint) ([]model.Permission, error)
	MyPermissions(identity authz.Identity) ([]model.Permission, error)
	Upsert(req *UpsertPermissionRequest) (*model.Permission, bool, error)
	BulkUpsert(req *BulkUpsertRequest) (*BulkUpsertResult, error)
	Delete(id uint) error
	DeleteByRole(roleID uint) error
}

type UpsertPermissionRequest struct {
	RoleID uint `json:"role_id" validate:"required"`
	PageID uint `json:"page_id" validate:"required"`
	View   bool `json:"view"`
	Add    bool `json:"add"`
	Edit   bool `json:"edit"`
	Del    bool `json:"del"`
}

type BulkUpsertRequest struct {
	RoleID      uint                  `json:"role_id" validate:"required"`
	Permissions []BulkPermissionInput `json:"permissions" validate:"required"`
}

type BulkPermissionInput struct {
	PageID uint `json:"page_id"`
	View   bool `json:"view"`
	Add    bool `json:"add"`
	Edit   bool `json:"edit"`
	Del    bool `json:"del"`
}

// BulkOutcome reports what happened to one tuple: created, updated or skipped
type BulkOutcome struct {
	PageID uint   `json:"page_id"`
	Page   string `json:"page,omitempty"`
	Status string `json:"status"`
}

type BulkUpsertResult struct {
	RoleID  uint          `json:"role_id"`
	Role    string        `json:"role"`
	Updated int           `json:"updated"`
	Results []BulkOutcome `json:"results"`
}

type permissionService struct {
	permissionRepo repository.PermissionRepository
	roleRepo       repository.RoleRepository
	pageRepo       repository.PageRepository
}

func NewPermissionService(permissionRepo repository.PermissionRepository, roleRepo repository.RoleRepository, pageRepo repository.PageRepository) PermissionService {
	return &permissionService{
		permissionRepo: permissionRepo,
		roleRepo:       roleRepo,
		pageRepo:       pageRepo,
	}
}

func (s *permissionService) GetAll() ([]model.Permission, error) {
	return s.permissionRepo.FindAll()
}

func (s *permissionService) GetByRole(roleID uint) ([]model.Permission, error) {
	if _, err := s.roleRepo.FindByID(roleID); err != nil {
		return nil, ErrRoleNotFound
	}
	return s.permissionRepo.FindByRole(roleID)
}

func (s *permissionService) MyPermissions(identity authz.Identity) ([]model.Permission, error) {
	return s.permissionRepo.FindByRole(identity.RoleID)
}

// Upsert creates or updates the single matrix cell for (role, page).
// The returned bool reports whether a new row was created.
func (s *permissionService) Upsert(req *UpsertPermissionRequest) (*model.Permission, bool, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, false, validationError(errs)
	}

	if _, err := s.roleRepo.FindByID(req.RoleID); err != nil {
		return nil, false, ErrRoleNotFound
	}
	if _, err := s.pageRepo.FindByID(req.PageID); err != nil {
		return nil, false, ErrPageNotFound
	}

	permission, created, err := s.upsertRow(req.RoleID, req.PageID, req.View, req.Add, req.Edit, req.Del)
	if err != nil {
		return nil, false, err
	}

	full, err := s.permissionRepo.FindByID(permission.ID)
	if err != nil {
		return nil, false, err
	}
	return full, created, nil
}

// upsertRow is atomic per cell: a create that loses the race against the
// unique (role_id, page_id) index is retried as an update, so concurrent
// callers can never produce duplicate rows.
func (s *permissionService) upsertRow(roleID, pageID uint, view, add, edit, del bool) (*model.Permission, bool, error) {
	existing, err := s.permissionRepo.FindByRoleAndPage(roleID, pageID)
	if err == nil {
		existing.View = view
		existing.Add = add
		existing.Edit = edit
		existing.Del = del
		if err := s.permissionRepo.Update(existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	permission := &model.Permission{
		RoleID: roleID,
		PageID: pageID,
		View:   view,
		Add:    add,
		Edit:   edit,
		Del:    del,
	}
	createErr := s.permissionRepo.Create(permission)
	if createErr == nil {
		return permission, true, nil
	}
	if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
		return nil, false, createErr
	}

	// Lost a create race; the row exists now, finish as an update
	existing, err = s.permissionRepo.FindByRoleAndPage(roleID, pageID)
	if err != nil {
		return nil, false, err
	}
	existing.View = view
	existing.Add = add
	existing.Edit = edit
	existing.Del = del
	if err := s.permissionRepo.Update(existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// BulkUpsert applies a batch of matrix cells for one role. Tuples that name
// a nonexistent page are skipped and reported, never failing the batch.
func (s *permissionService) BulkUpsert(req *BulkUpsertRequest) (*BulkUpsertResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	role, err := s.roleRepo.FindByID(req.RoleID)
	if err != nil {
		return nil, ErrRoleNotFound
	}

	result := &BulkUpsertResult{
		RoleID:  role.ID,
		Role:    role.Name,
		Results: make([]BulkOutcome, 0, len(req.Permissions)),
	}

	for _, input := range req.Permissions {
		if input.PageID == 0 {
			continue
		}

		page, err := s.pageRepo.FindByID(input.PageID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Results = append(result.Results, BulkOutcome{
					PageID: input.PageID,
					Status: "skipped",
				})
				continue
			}
			return nil, err
		}

		_, created, err := s.upsertRow(req.RoleID, input.PageID, input.View, input.Add, input.Edit, input.Del)
		if err != nil {
			return nil, err
		}

		status := "updated"
		if created {
			status = "created"
		}
		result.Results = append(result.Results, BulkOutcome{
			PageID: page.ID,
			Page:   page.Name,
			Status: status,
		})
		result.Updated++
	}

	return result, nil
}

func (s *permissionService) Delete(id uint) error {
	if _, err := s.permissionRepo.FindByID(id); err != nil {
		return err
	}
	return s.permissionRepo.Delete(id)
}

func (s *permissionService) DeleteByRole(roleID uint) error {
	if _, err := s.roleRepo.FindByID(roleID); err != nil {
		return ErrRoleNotFound
	}
	return s.permissionRepo.DeleteByRole(roleID)
}
