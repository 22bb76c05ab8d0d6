package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stylemart/internal/constants"
	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *SaleService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Counter{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
		&models.ProductSale{}, &models.CategorySale{},
	); err != nil {
		t.Fatalf("migrate order models failed: %v", err)
	}
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	saleService := NewSaleService(orderRepo, productRepo, saleRepo)
	// Nil queue client makes delivered orders record sales inline.
	orderService := NewOrderService(orderRepo, productRepo, cartRepo, nil, saleService)
	return orderService, saleService, db
}

func seedOrderProduct(t *testing.T, db *gorm.DB, title, category string, price float64, stock int) *models.Product {
	t.Helper()
	repo := repository.NewProductRepository(db)
	product := &models.Product{
		Title:    title,
		Category: category,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Stock:    stock,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestOrderCreateComputesTotals(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	shirt := seedOrderProduct(t, db, "Shirt", "Shirts", 10, 50)
	belt := seedOrderProduct(t, db, "Belt", "Accessories", 5, 50)

	order, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items: []CreateOrderItemInput{
			{ProductID: shirt.ID, Quantity: 2},
			{ProductID: belt.ID, Quantity: 1},
		},
		ShippingFee: models.NewMoneyFromDecimal(decimal.NewFromInt(3)),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if !order.Subtotal.Decimal.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("subtotal want 25 got %s", order.Subtotal)
	}
	if !order.Total.Decimal.Equal(decimal.NewFromInt(28)) {
		t.Fatalf("total want 28 got %s", order.Total)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want Pending got %s", order.Status)
	}
	if order.Payment.Method != constants.PaymentMethodCOD {
		t.Fatalf("default payment method want COD got %s", order.Payment.Method)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(order.Items))
	}
	if order.Items[0].Title != "Shirt" {
		t.Fatalf("item title snapshot want Shirt got %s", order.Items[0].Title)
	}
}

func TestOrderCreateClearsCart(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	shirt := seedOrderProduct(t, db, "Shirt", "Shirts", 10, 50)

	cartRepo := repository.NewCartRepository(db)
	cartService := NewCartService(cartRepo, repository.NewProductRepository(db))
	if _, err := cartService.AddItem(AddCartItemInput{UserID: 1, ProductID: shirt.ID, Quantity: 2, Size: "M", Color: "Blue"}); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}

	if _, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items:  []CreateOrderItemInput{{ProductID: shirt.ID, Quantity: 2}},
	}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	view, err := cartService.Get(1)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart after order want empty got %d items", len(view.Items))
	}
}

func TestOrderCreateValidation(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	shirt := seedOrderProduct(t, db, "Shirt", "Shirts", 10, 50)

	if _, err := svc.Create(CreateOrderInput{UserID: 1}); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("no items want ErrEmptyOrder got %v", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items:  []CreateOrderItemInput{{ProductID: shirt.ID, Quantity: 0}},
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero quantity want ErrInvalidInput got %v", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items:  []CreateOrderItemInput{{ProductID: 999, Quantity: 1}},
	}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product want ErrProductNotFound got %v", err)
	}
}

func TestOrderCreateReservesStock(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	shirt := seedOrderProduct(t, db, "Shirt", "Shirts", 10, 5)

	if _, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items:  []CreateOrderItemInput{{ProductID: shirt.ID, Quantity: 2}},
	}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, shirt.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.Stock != 3 {
		t.Fatalf("stock after order want 3 got %d", reloaded.Stock)
	}

	// Ordering more than the remaining stock fails and rolls back: the
	// stock stays put and no order row is written.
	if _, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items:  []CreateOrderItemInput{{ProductID: shirt.ID, Quantity: 4}},
	}); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("over-order want ErrInsufficientStock got %v", err)
	}
	if err := db.First(&reloaded, shirt.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if reloaded.Stock != 3 {
		t.Fatalf("stock after failed order want 3 got %d", reloaded.Stock)
	}
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	if orderCount != 1 {
		t.Fatalf("orders after failed create want 1 got %d", orderCount)
	}
}

func TestOrderListResolvesItemProducts(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	shirt := seedOrderProduct(t, db, "Shirt", "Shirts", 10, 50)

	if _, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items:  []CreateOrderItemInput{{ProductID: shirt.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	orders, total, err := svc.List(repository.OrderListFilter{})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("orders want 1 got total=%d len=%d", total, len(orders))
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].Product == nil {
		t.Fatalf("listed order items want resolved product, got %+v", orders[0].Items)
	}
	if orders[0].Items[0].Product.Title != "Shirt" {
		t.Fatalf("resolved product title want Shirt got %s", orders[0].Items[0].Product.Title)
	}
}

func TestOrderUpdateRecomputesTotal(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	shirt := seedOrderProduct(t, db, "Shirt", "Shirts", 10, 50)

	order, err := svc.Create(CreateOrderInput{
		UserID:      1,
		Items:       []CreateOrderItemInput{{ProductID: shirt.ID, Quantity: 2}},
		ShippingFee: models.NewMoneyFromDecimal(decimal.NewFromInt(3)),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	fee := models.NewMoneyFromDecimal(decimal.NewFromInt(8))
	order, err = svc.Update(order.ID, UpdateOrderInput{ShippingFee: &fee})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !order.Total.Decimal.Equal(decimal.NewFromInt(28)) {
		t.Fatalf("total after fee change want 28 got %s", order.Total)
	}
}

func TestOrderSetStatusAcceptsAnyKnownStatus(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	shirt := seedOrderProduct(t, db, "Shirt", "Shirts", 10, 50)

	order, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items:  []CreateOrderItemInput{{ProductID: shirt.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	// No transition graph: cancelled straight back to shipped is fine.
	for _, status := range []string{
		constants.OrderStatusCancelled,
		constants.OrderStatusShipped,
		constants.OrderStatusPending,
	} {
		order, err = svc.SetStatus(order.ID, status)
		if err != nil {
			t.Fatalf("set status %s failed: %v", status, err)
		}
		if order.Status != status {
			t.Fatalf("status want %s got %s", status, order.Status)
		}
	}

	if _, err := svc.SetStatus(order.ID, "Lost"); !errors.Is(err, ErrInvalidOrderStatus) {
		t.Fatalf("unknown status want ErrInvalidOrderStatus got %v", err)
	}
}

func TestOrderDeliveredRecordsSales(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	shirt := seedOrderProduct(t, db, "Shirt", "Shirts", 10, 50)
	pants := seedOrderProduct(t, db, "Pants", "Pants", 20, 30)

	order, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items: []CreateOrderItemInput{
			{ProductID: shirt.ID, Quantity: 2},
			{ProductID: pants.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.SetStatus(order.ID, constants.OrderStatusDelivered); err != nil {
		t.Fatalf("deliver failed: %v", err)
	}

	var productSales []models.ProductSale
	if err := db.Order("product_id").Find(&productSales).Error; err != nil {
		t.Fatalf("load product sales failed: %v", err)
	}
	if len(productSales) != 2 {
		t.Fatalf("product sales want 2 got %d", len(productSales))
	}
	if productSales[0].ProductID != shirt.ID || productSales[0].QuantitySold != 2 {
		t.Fatalf("shirt sale wrong: %+v", productSales[0])
	}
	// Stock was reserved at create, so the sale row sees 50 - 2.
	if productSales[0].StockLeft != 48 {
		t.Fatalf("shirt stock left want 48 got %d", productSales[0].StockLeft)
	}

	var categorySales []models.CategorySale
	if err := db.Order("category").Find(&categorySales).Error; err != nil {
		t.Fatalf("load category sales failed: %v", err)
	}
	if len(categorySales) != 2 {
		t.Fatalf("category sales want 2 got %d", len(categorySales))
	}

	// Delivering again must not duplicate the records.
	if _, err := svc.SetStatus(order.ID, constants.OrderStatusDelivered); err != nil {
		t.Fatalf("second deliver failed: %v", err)
	}
	var count int64
	db.Model(&models.ProductSale{}).Count(&count)
	if count != 2 {
		t.Fatalf("product sales after repeat deliver want 2 got %d", count)
	}
}

func TestOrderItemsSurviveProductDelete(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	shirt := seedOrderProduct(t, db, "Shirt", "Shirts", 10, 50)

	order, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items:  []CreateOrderItemInput{{ProductID: shirt.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := repository.NewProductRepository(db).Delete(shirt.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	reloaded, err := svc.Get(order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if len(reloaded.Items) != 1 {
		t.Fatalf("items want 1 got %d", len(reloaded.Items))
	}
	if reloaded.Items[0].Title != "Shirt" {
		t.Fatalf("snapshot title want Shirt got %s", reloaded.Items[0].Title)
	}
	if !reloaded.Items[0].UnitPrice.Decimal.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("snapshot price want 10 got %s", reloaded.Items[0].UnitPrice)
	}

	// A delivered order with a deleted product still records the sale,
	// with zero stock left.
	if _, err := svc.SetStatus(order.ID, constants.OrderStatusDelivered); err != nil {
		t.Fatalf("deliver failed: %v", err)
	}
	var sale models.ProductSale
	if err := db.First(&sale).Error; err != nil {
		t.Fatalf("load sale failed: %v", err)
	}
	if sale.StockLeft != 0 {
		t.Fatalf("stock left for deleted product want 0 got %d", sale.StockLeft)
	}
}

func TestOrderGetForUser(t *testing.T) {
	svc, _, db := setupOrderServiceTest(t)
	shirt := seedOrderProduct(t, db, "Shirt", "Shirts", 10, 50)

	order, err := svc.Create(CreateOrderInput{
		UserID: 1,
		Items:  []CreateOrderItemInput{{ProductID: shirt.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.GetForUser(order.ID, 1); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if _, err := svc.GetForUser(order.ID, 2); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("other user want ErrOrderNotFound got %v", err)
	}
}
