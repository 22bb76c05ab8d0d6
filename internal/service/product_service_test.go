package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) *ProductService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Counter{}, &models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db))
}

func TestProductCreateTrimsAndAssignsID(t *testing.T) {
	svc := setupProductServiceTest(t)

	product, err := svc.Create(ProductInput{
		Title:    "  Oxford Shirt  ",
		Category: " Shirts ",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(39.99)),
		Stock:    10,
		Images:   []string{"/uploads/products/a.png"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.ID != 1 {
		t.Fatalf("first product id want 1 got %d", product.ID)
	}
	if product.Title != "Oxford Shirt" || product.Category != "Shirts" {
		t.Fatalf("fields not trimmed: %q %q", product.Title, product.Category)
	}

	second, err := svc.Create(ProductInput{Title: "Chinos", Category: "Pants", Stock: 5})
	if err != nil {
		t.Fatalf("create second failed: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("second product id want 2 got %d", second.ID)
	}
}

func TestProductCreateValidation(t *testing.T) {
	svc := setupProductServiceTest(t)

	if _, err := svc.Create(ProductInput{Title: "   ", Stock: 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank title want ErrInvalidInput got %v", err)
	}
	if _, err := svc.Create(ProductInput{Title: "Belt", Stock: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative stock want ErrInvalidInput got %v", err)
	}
	if _, err := svc.Create(ProductInput{
		Title: "Belt",
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(-5.00)),
		Stock: 1,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative price want ErrInvalidInput got %v", err)
	}
}

func TestProductUpdateKeepsID(t *testing.T) {
	svc := setupProductServiceTest(t)

	created, err := svc.Create(ProductInput{Title: "Belt", Category: "Accessories", Stock: 3})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(created.ID, ProductInput{
		Title:    "Leather Belt",
		Category: "Accessories",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(24.99)),
		Stock:    30,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed on update: %d -> %d", created.ID, updated.ID)
	}
	if updated.Title != "Leather Belt" || updated.Stock != 30 {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := svc.Update(created.ID, ProductInput{Title: "", Stock: 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank title want ErrInvalidInput got %v", err)
	}
	if _, err := svc.Update(created.ID, ProductInput{
		Title: "Leather Belt",
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(-1)),
		Stock: 1,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative price want ErrInvalidInput got %v", err)
	}
	if _, err := svc.Update(999, ProductInput{Title: "Ghost", Stock: 1}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown id want ErrProductNotFound got %v", err)
	}
}

func TestProductDeleteAndGet(t *testing.T) {
	svc := setupProductServiceTest(t)

	created, err := svc.Create(ProductInput{Title: "Sneakers", Category: "Shoes", Stock: 8})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("get deleted want ErrProductNotFound got %v", err)
	}
	if err := svc.Delete(created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("double delete want ErrProductNotFound got %v", err)
	}
}
