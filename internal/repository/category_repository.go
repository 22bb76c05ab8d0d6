package repository

import (
	"errors"
	"strings"

	"github.com/stylemart/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository is the category data access interface.
type CategoryRepository interface {
	List(onlyActive bool) ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
	CountByName(name string, excludeID *uint) (int64, error)
}

// GormCategoryRepository is the GORM implementation.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List returns categories ordered by name.
func (r *GormCategoryRepository) List(onlyActive bool) ([]models.Category, error) {
	var categories []models.Category
	query := r.db.Order("name ASC")
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID fetches one category, nil when absent.
func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetByName fetches a category by name, case-insensitive.
func (r *GormCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a category.
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update saves a category.
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete soft deletes a category.
func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// CountByName counts categories with the given name, case-insensitive.
func (r *GormCategoryRepository) CountByName(name string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Category{}).Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name))
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
