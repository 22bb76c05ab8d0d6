package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stylemart/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Counter{}, &models.Product{}); err != nil {
		t.Fatalf("migrate product models failed: %v", err)
	}
	return NewProductRepository(db), db
}

func newTestProduct(title, category string, price float64, stock int) *models.Product {
	return &models.Product{
		Title:    title,
		Category: category,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Stock:    stock,
	}
}

func TestProductCreateAssignsSequentialIDs(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	for i := 1; i <= 5; i++ {
		product := newTestProduct(fmt.Sprintf("Shirt %d", i), "Shirts", 19.99, 10)
		if err := repo.Create(product); err != nil {
			t.Fatalf("create product %d failed: %v", i, err)
		}
		if product.ID != uint(i) {
			t.Fatalf("product id want %d got %d", i, product.ID)
		}
	}
}

func TestProductCreateContinuesCounterAfterDelete(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	first := newTestProduct("First", "Shirts", 10, 1)
	if err := repo.Create(first); err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	second := newTestProduct("Second", "Shirts", 10, 1)
	if err := repo.Create(second); err != nil {
		t.Fatalf("create second failed: %v", err)
	}
	if err := repo.Delete(second.ID); err != nil {
		t.Fatalf("delete second failed: %v", err)
	}

	// Deleting never rewinds the counter, so ids are never reused.
	third := newTestProduct("Third", "Shirts", 10, 1)
	if err := repo.Create(third); err != nil {
		t.Fatalf("create third failed: %v", err)
	}
	if third.ID != 3 {
		t.Fatalf("id after delete want 3 got %d", third.ID)
	}
}

func TestProductListFilters(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	for _, p := range []*models.Product{
		newTestProduct("Oxford Shirt", "Shirts", 39.99, 5),
		newTestProduct("Linen Shirt", "Shirts", 44.99, 5),
		newTestProduct("Canvas Sneakers", "Shoes", 59.99, 5),
	} {
		if err := repo.Create(p); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	products, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, Category: "Shirts"})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("category filter want 2 got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "sneak"})
	if err != nil {
		t.Fatalf("list by search failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("search filter want 1 got total=%d len=%d", total, len(products))
	}
	if products[0].Title != "Canvas Sneakers" {
		t.Fatalf("search result want Canvas Sneakers got %s", products[0].Title)
	}
}

func TestProductDecrementStock(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	product := newTestProduct("Belt", "Accessories", 24.99, 3)
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	affected, err := repo.DecrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("decrement affected want 1 got %d", affected)
	}

	// Not enough stock left, the guarded update matches no rows.
	affected, err = repo.DecrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("second decrement failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("short stock decrement affected want 0 got %d", affected)
	}

	var stored models.Product
	if err := db.First(&stored, product.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if stored.Stock != 1 {
		t.Fatalf("stock want 1 got %d", stored.Stock)
	}
}

func TestCounterNextIsMonotonic(t *testing.T) {
	_, db := setupProductRepositoryTest(t)
	counters := NewCounterRepository(db)

	seen := map[uint]bool{}
	last := uint(0)
	for i := 0; i < 10; i++ {
		next, err := counters.Next("product_id")
		if err != nil {
			t.Fatalf("counter next failed: %v", err)
		}
		if next <= last {
			t.Fatalf("counter not monotonic: %d after %d", next, last)
		}
		if seen[next] {
			t.Fatalf("counter repeated value %d", next)
		}
		seen[next] = true
		last = next
	}
}
