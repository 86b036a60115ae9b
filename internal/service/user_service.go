package service

import (
	"errors"
	"fmt"
	"strings"

	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"
	"go-lottery-admin/pkg/validator"
)

var (
	ErrEmailExists    = errors.New("email already exists")
	ErrRoleNotFound   = errors.New("role not found")
	ErrCannotSelfWipe = errors.New("you cannot delete your own account")
	ErrValidation     = errors.New("validation failed")
)

type UserService interface {
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uint) (*model.UserResponse, error)
	CreateUser(req *CreateUserRequest) (*model.UserResponse, error)
	UpdateUser(id uint, req *UpdateUserRequest) (*model.UserResponse, error)
	DeleteUser(id, actorID uint) error
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   uint   `json:"role_id"` // Defaults to the non-privileged role
}

type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	RoleID   uint    `json:"role_id" validate:"required"`
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo}
}

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("%w: field %s failed on %s", ErrValidation, first.FailedField, first.Tag)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i := range users {
		responses[i] = users[i].ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uint) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
		return nil, ErrEmailExists
	}

	roleID := req.RoleID
	if roleID == 0 {
		roleID = model.RoleUserID
	}
	if _, err := s.roleRepo.FindByID(roleID); err != nil {
		return nil, ErrRoleNotFound
	}

	user := &model.User{
		Name:   strings.TrimSpace(req.Name),
		Email:  email,
		RoleID: roleID,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	created, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return nil, err
	}
	resp := created.ToResponse()
	return &resp, nil
}

func (s *userService) UpdateUser(id uint, req *UpdateUserRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != user.Email {
		if existing, _ := s.userRepo.FindByEmail(email); existing != nil {
			return nil, ErrEmailExists
		}
	}

	if _, err := s.roleRepo.FindByID(req.RoleID); err != nil {
		return nil, ErrRoleNotFound
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = email
	user.RoleID = req.RoleID
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return nil, err
	}
	resp := updated.ToResponse()
	return &resp, nil
}

func (s *userService) DeleteUser(id, actorID uint) error {
	if id == actorID {
		return ErrCannotSelfWipe
	}
	if _, err := s.userRepo.FindByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
