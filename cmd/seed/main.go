package main

import (
	"github.com/stylemart/internal/config"
	"github.com/stylemart/internal/logger"
	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/provider"
	"github.com/stylemart/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	container := provider.NewContainer(cfg)

	categories := []models.Category{
		{Name: "Shirts", Description: "Casual and formal shirts"},
		{Name: "Pants", Description: "Jeans, chinos and trousers"},
		{Name: "Shoes", Description: "Sneakers, boots and sandals"},
		{Name: "Accessories", Description: "Belts, hats and bags"},
	}
	for _, cat := range categories {
		existing, err := container.CategoryRepo.GetByName(cat.Name)
		if err != nil {
			stdLog.Printf("failed to look up category %s: %v", cat.Name, err)
			continue
		}
		if existing != nil {
			stdLog.Printf("category already exists: %s", cat.Name)
			continue
		}
		if err := container.CategoryRepo.Create(&cat); err != nil {
			stdLog.Printf("failed to create category %s: %v", cat.Name, err)
		} else {
			stdLog.Printf("created category: %s", cat.Name)
		}
	}
	products := []service.ProductInput{
		{
			Title:       "Classic Oxford Shirt",
			Category:    "Shirts",
			Description: "A wardrobe staple in breathable cotton.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(39.99)),
			Stock:       120,
			Images:      []string{"/uploads/seed/oxford-shirt.jpg"},
		},
		{
			Title:       "Slim Fit Chinos",
			Category:    "Pants",
			Description: "Stretch chinos that keep their shape.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(49.99)),
			Stock:       80,
			Images:      []string{"/uploads/seed/chinos.jpg"},
		},
		{
			Title:       "Canvas Sneakers",
			Category:    "Shoes",
			Description: "Low top sneakers for everyday wear.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(59.99)),
			Stock:       60,
			Images:      []string{"/uploads/seed/sneakers.jpg"},
		},
		{
			Title:       "Leather Belt",
			Category:    "Accessories",
			Description: "Full grain leather with a brushed buckle.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(24.99)),
			Stock:       200,
			Images:      []string{"/uploads/seed/belt.jpg"},
		},
	}
	for _, input := range products {
		var existing models.Product
		if err := models.DB.Where("title = ?", input.Title).First(&existing).Error; err != nil {
			created, err := container.ProductService.Create(input)
			if err != nil {
				stdLog.Printf("failed to create product %s: %v", input.Title, err)
				continue
			}
			stdLog.Printf("created product %d: %s", created.ID, created.Title)
		} else {
			stdLog.Printf("product already exists: %s", input.Title)
		}
	}

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("failed to initialize default admin: %v", err)
	}

	stdLog.Printf("seed finished")
}
