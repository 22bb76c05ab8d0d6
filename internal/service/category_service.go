package service

import (
	"strings"

	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"
)

// CategoryService is the category business service.
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryInput carries category create/update fields.
type CategoryInput struct {
	Name        string
	Description string
	IsActive    *bool
}

// List returns categories, optionally only active ones.
func (s *CategoryService) List(onlyActive bool) ([]models.Category, error) {
	return s.repo.List(onlyActive)
}

// Get fetches one category.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create inserts a category. Names are unique case-insensitively.
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	count, err := s.repo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}

	category := models.Category{
		Name:        name,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update saves new field values on an existing category.
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	count, err := s.repo.CountByName(name, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}

	category.Name = name
	category.Description = input.Description
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Products keep their category name, so
// they stay browsable by text filter.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.repo.Delete(id)
}
