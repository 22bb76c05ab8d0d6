package repository

import (
	"github.com/stylemart/internal/models"

	"gorm.io/gorm"
)

// SaleRepository persists and lists sales records.
type SaleRepository interface {
	CreateProductSales(sales []models.ProductSale) error
	CreateCategorySales(sales []models.CategorySale) error
	ListProductSales(filter SaleListFilter) ([]models.ProductSale, int64, error)
	ListCategorySales(filter SaleListFilter) ([]models.CategorySale, int64, error)
	WithTx(tx *gorm.DB) SaleRepository
}

// GormSaleRepository is the GORM implementation.
type GormSaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a sales record repository.
func NewSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormSaleRepository) WithTx(tx *gorm.DB) SaleRepository {
	if tx == nil {
		return r
	}
	return &GormSaleRepository{db: tx}
}

// CreateProductSales appends product sales records.
func (r *GormSaleRepository) CreateProductSales(sales []models.ProductSale) error {
	if len(sales) == 0 {
		return nil
	}
	return r.db.Create(&sales).Error
}

// CreateCategorySales appends category sales records.
func (r *GormSaleRepository) CreateCategorySales(sales []models.CategorySale) error {
	if len(sales) == 0 {
		return nil
	}
	return r.db.Create(&sales).Error
}

// ListProductSales returns product sales records, newest first.
func (r *GormSaleRepository) ListProductSales(filter SaleListFilter) ([]models.ProductSale, int64, error) {
	query := r.db.Model(&models.ProductSale{})
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date < ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var sales []models.ProductSale
	if err := query.Order("date DESC, id DESC").Find(&sales).Error; err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// ListCategorySales returns category sales records, newest first.
func (r *GormSaleRepository) ListCategorySales(filter SaleListFilter) ([]models.CategorySale, int64, error) {
	query := r.db.Model(&models.CategorySale{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date < ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var sales []models.CategorySale
	if err := query.Order("date DESC, id DESC").Find(&sales).Error; err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}
