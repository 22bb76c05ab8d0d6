package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupSaleServiceTest(t *testing.T) (*SaleService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Counter{}, &models.Product{},
		&models.Order{}, &models.OrderItem{},
		&models.ProductSale{}, &models.CategorySale{},
	); err != nil {
		t.Fatalf("migrate sale models failed: %v", err)
	}
	svc := NewSaleService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		repository.NewSaleRepository(db),
	)
	return svc, db
}

func TestSaleAddProductSale(t *testing.T) {
	svc, db := setupSaleServiceTest(t)

	if err := svc.AddProductSale(models.ProductSale{ProductID: 0, QuantitySold: 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero product want ErrInvalidInput got %v", err)
	}
	if err := svc.AddProductSale(models.ProductSale{ProductID: 1, QuantitySold: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero quantity want ErrInvalidInput got %v", err)
	}

	if err := svc.AddProductSale(models.ProductSale{ProductID: 1, QuantitySold: 3, StockLeft: 7}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var stored models.ProductSale
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("load sale failed: %v", err)
	}
	if stored.Date.IsZero() {
		t.Fatalf("omitted date must default to now")
	}
	if stored.StockLeft != 7 {
		t.Fatalf("stock left want 7 got %d", stored.StockLeft)
	}
}

func TestSaleAddCategorySale(t *testing.T) {
	svc, db := setupSaleServiceTest(t)

	if err := svc.AddCategorySale(models.CategorySale{Category: "", QuantitySold: 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty category want ErrInvalidInput got %v", err)
	}
	if err := svc.AddCategorySale(models.CategorySale{Category: "Shirts", QuantitySold: 4}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var stored models.CategorySale
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("load sale failed: %v", err)
	}
	if stored.Category != "Shirts" || stored.QuantitySold != 4 {
		t.Fatalf("stored sale wrong: %+v", stored)
	}
}

func TestSaleListFilters(t *testing.T) {
	svc, db := setupSaleServiceTest(t)
	now := time.Now()

	db.Create(&models.ProductSale{ProductID: 1, Date: now, QuantitySold: 2})
	db.Create(&models.ProductSale{ProductID: 2, Date: now.AddDate(0, 0, -10), QuantitySold: 5})
	db.Create(&models.CategorySale{Category: "Shirts", Date: now, QuantitySold: 2})
	db.Create(&models.CategorySale{Category: "Shoes", Date: now, QuantitySold: 3})

	sales, total, err := svc.ListProductSales(repository.SaleListFilter{Page: 1, PageSize: 10, ProductID: 2})
	if err != nil {
		t.Fatalf("list product sales failed: %v", err)
	}
	if total != 1 || sales[0].ProductID != 2 {
		t.Fatalf("product filter want product 2 got total=%d", total)
	}

	from := now.AddDate(0, 0, -1)
	sales, total, err = svc.ListProductSales(repository.SaleListFilter{Page: 1, PageSize: 10, DateFrom: &from})
	if err != nil {
		t.Fatalf("list by date failed: %v", err)
	}
	if total != 1 || sales[0].ProductID != 1 {
		t.Fatalf("date filter want product 1 got total=%d", total)
	}

	catSales, total, err := svc.ListCategorySales(repository.SaleListFilter{Page: 1, PageSize: 10, Category: "Shoes"})
	if err != nil {
		t.Fatalf("list category sales failed: %v", err)
	}
	if total != 1 || catSales[0].Category != "Shoes" {
		t.Fatalf("category filter want Shoes got total=%d", total)
	}
}

func TestSaleRecordOrderSalesMissingOrder(t *testing.T) {
	svc, _ := setupSaleServiceTest(t)

	if err := svc.RecordOrderSales(123); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order want ErrOrderNotFound got %v", err)
	}
}
