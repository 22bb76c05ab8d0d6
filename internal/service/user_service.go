package service

import (
	"net/mail"
	"strings"

	"github.com/stylemart/internal/constants"
	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService is the admin-side account management service.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a user management service.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput carries the admin create-account fields.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// List returns accounts matching the filter.
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// Create adds an account with the given role, defaulting to admin.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || len(input.Password) < 6 {
		return nil, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidInput
	}
	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = constants.RoleAdmin
	}
	if role != constants.RoleAdmin && role != constants.RoleUser {
		return nil, ErrInvalidInput
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateRole changes an account's role.
func (s *UserService) UpdateRole(id uint, role string) (*models.User, error) {
	if role != constants.RoleAdmin && role != constants.RoleUser {
		return nil, ErrInvalidInput
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account.
func (s *UserService) Delete(id uint) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(id)
}
