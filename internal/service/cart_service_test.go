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

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Counter{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
	); err != nil {
		t.Fatalf("migrate cart models failed: %v", err)
	}
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	return NewCartService(cartRepo, productRepo), db
}

func seedCartProduct(t *testing.T, db *gorm.DB, title string, price float64) *models.Product {
	t.Helper()
	repo := repository.NewProductRepository(db)
	product := &models.Product{
		Title:    title,
		Category: "Shirts",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Stock:    100,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestCartGetReturnsEmptyShape(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	view, err := svc.Get(7)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if view.Items == nil || len(view.Items) != 0 {
		t.Fatalf("empty cart items want [] got %v", view.Items)
	}
	if !view.Total.Decimal.IsZero() {
		t.Fatalf("empty cart total want 0 got %s", view.Total)
	}
}

func TestCartAddItemMergesOnProductAndSize(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "Oxford Shirt", 25)

	_, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 2, Size: "M", Color: "Blue"})
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	view, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 3, Size: "M", Color: "Red"})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	// Same product and size merge into one line even when the color
	// differs; the first line's color wins.
	if len(view.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 5 {
		t.Fatalf("merged quantity want 5 got %d", view.Items[0].Quantity)
	}
	if view.Items[0].Color != "Blue" {
		t.Fatalf("merged color want Blue got %s", view.Items[0].Color)
	}

	view, err = svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 1, Size: "L", Color: "Blue"})
	if err != nil {
		t.Fatalf("third add failed: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("different size must be a new line, items want 2 got %d", len(view.Items))
	}
}

func TestCartTotalSumsLines(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	shirt := seedCartProduct(t, db, "Shirt", 10)
	shoes := seedCartProduct(t, db, "Shoes", 49.5)

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: shirt.ID, Quantity: 2, Size: "M", Color: "Blue"}); err != nil {
		t.Fatalf("add shirt failed: %v", err)
	}
	view, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: shoes.ID, Quantity: 1, Size: "42", Color: "Black"})
	if err != nil {
		t.Fatalf("add shoes failed: %v", err)
	}

	want := decimal.NewFromFloat(69.5)
	if !view.Total.Decimal.Equal(want) {
		t.Fatalf("total want %s got %s", want, view.Total)
	}
}

func TestCartAddItemValidation(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "Shirt", 10)

	cases := []AddCartItemInput{
		{UserID: 0, ProductID: product.ID, Quantity: 1, Size: "M", Color: "Blue"},
		{UserID: 1, ProductID: product.ID, Quantity: 0, Size: "M", Color: "Blue"},
		{UserID: 1, ProductID: product.ID, Quantity: 1, Size: " ", Color: "Blue"},
		{UserID: 1, ProductID: product.ID, Quantity: 1, Size: "M", Color: ""},
	}
	for i, input := range cases {
		if _, err := svc.AddItem(input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d want ErrInvalidInput got %v", i, err)
		}
	}

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: 999, Quantity: 1, Size: "M", Color: "Blue"}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product want ErrProductNotFound got %v", err)
	}
}

func TestCartUpdateItemQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "Shirt", 10)

	view, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 2, Size: "M", Color: "Blue"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	itemID := view.Items[0].ID

	view, err = svc.UpdateItemQuantity(1, itemID, 7)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if view.Items[0].Quantity != 7 {
		t.Fatalf("quantity want 7 got %d", view.Items[0].Quantity)
	}

	if _, err := svc.UpdateItemQuantity(1, itemID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity want ErrInvalidQuantity got %v", err)
	}
	if _, err := svc.UpdateItemQuantity(1, 999, 2); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("unknown item want ErrCartItemNotFound got %v", err)
	}
	if _, err := svc.UpdateItemQuantity(2, itemID, 2); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("other user want ErrCartNotFound got %v", err)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	shirt := seedCartProduct(t, db, "Shirt", 10)
	shoes := seedCartProduct(t, db, "Shoes", 20)

	if _, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: shirt.ID, Quantity: 1, Size: "M", Color: "Blue"}); err != nil {
		t.Fatalf("add shirt failed: %v", err)
	}
	view, err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: shoes.ID, Quantity: 1, Size: "42", Color: "Black"})
	if err != nil {
		t.Fatalf("add shoes failed: %v", err)
	}

	view, err = svc.RemoveItem(1, view.Items[0].ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("items after remove want 1 got %d", len(view.Items))
	}

	view, err = svc.Clear(1)
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("items after clear want 0 got %d", len(view.Items))
	}
	if !view.Total.Decimal.IsZero() {
		t.Fatalf("total after clear want 0 got %s", view.Total)
	}

	if _, err := svc.Clear(42); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("clear without cart want ErrCartNotFound got %v", err)
	}
}
