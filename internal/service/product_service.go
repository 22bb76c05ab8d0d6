package service

import (
	"strings"

	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"
)

// ProductService is the catalog business service.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductInput carries product create/update fields.
type ProductInput struct {
	Title       string
	Category    string
	Description string
	Price       models.Money
	Stock       int
	Images      []string
}

// List returns products matching the filter with the total count.
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.repo.List(filter)
}

// Get fetches one product.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create inserts a product. The sequential ID is assigned by the
// repository from the product counter.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	if input.Price.IsNegative() || input.Stock < 0 {
		return nil, ErrInvalidInput
	}

	product := models.Product{
		Title:       title,
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Images:      models.StringArray(input.Images),
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update saves new field values on an existing product. The ID never
// changes.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}
	if input.Price.IsNegative() || input.Stock < 0 {
		return nil, ErrInvalidInput
	}

	product.Title = title
	product.Category = strings.TrimSpace(input.Category)
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.Images = models.StringArray(input.Images)

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product. Order item snapshots keep their titles
// and prices, so history is unaffected.
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.repo.Delete(id)
}
