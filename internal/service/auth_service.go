package service

import (
	"errors"
	"strings"

	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"
	"go-lottery-admin/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Profile(userID uint) (*model.UserResponse, error)
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Same error for unknown email and wrong password
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) Profile(userID uint) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}
