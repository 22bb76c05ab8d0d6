package service

import (
	"time"

	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"
)

// SaleService appends sales records when orders are delivered.
type SaleService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewSaleService creates a sales record service.
func NewSaleService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// RecordOrderSales appends one ProductSale per order line and one
// CategorySale per distinct category in the order. Lines whose
// product has since been deleted are recorded with zero stock left
// and no category.
func (s *SaleService) RecordOrderSales(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	now := time.Now()

	productIDs := make([]uint, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(productIDs)
	if err != nil {
		return err
	}
	productMap := make(map[uint]models.Product, len(products))
	for _, product := range products {
		productMap[product.ID] = product
	}

	productSales := make([]models.ProductSale, 0, len(order.Items))
	categoryTotals := make(map[string]int)
	for _, item := range order.Items {
		stockLeft := 0
		if product, ok := productMap[item.ProductID]; ok {
			stockLeft = product.Stock
			if product.Category != "" {
				categoryTotals[product.Category] += item.Quantity
			}
		}
		productSales = append(productSales, models.ProductSale{
			ProductID:    item.ProductID,
			Date:         now,
			QuantitySold: item.Quantity,
			StockLeft:    stockLeft,
		})
	}

	categorySales := make([]models.CategorySale, 0, len(categoryTotals))
	for category, quantity := range categoryTotals {
		categorySales = append(categorySales, models.CategorySale{
			Category:     category,
			Date:         now,
			QuantitySold: quantity,
		})
	}

	if err := s.saleRepo.CreateProductSales(productSales); err != nil {
		return err
	}
	return s.saleRepo.CreateCategorySales(categorySales)
}

// AddProductSale appends a single product sales record.
func (s *SaleService) AddProductSale(sale models.ProductSale) error {
	if sale.ProductID == 0 || sale.QuantitySold <= 0 {
		return ErrInvalidInput
	}
	if sale.Date.IsZero() {
		sale.Date = time.Now()
	}
	return s.saleRepo.CreateProductSales([]models.ProductSale{sale})
}

// AddCategorySale appends a single category sales record.
func (s *SaleService) AddCategorySale(sale models.CategorySale) error {
	if sale.Category == "" || sale.QuantitySold <= 0 {
		return ErrInvalidInput
	}
	if sale.Date.IsZero() {
		sale.Date = time.Now()
	}
	return s.saleRepo.CreateCategorySales([]models.CategorySale{sale})
}

// ListProductSales returns product sales records.
func (s *SaleService) ListProductSales(filter repository.SaleListFilter) ([]models.ProductSale, int64, error) {
	return s.saleRepo.ListProductSales(filter)
}

// ListCategorySales returns category sales records.
func (s *SaleService) ListCategorySales(filter repository.SaleListFilter) ([]models.CategorySale, int64, error) {
	return s.saleRepo.ListCategorySales(filter)
}
