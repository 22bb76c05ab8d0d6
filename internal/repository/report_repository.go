package repository

import (
	"fmt"
	"time"

	"github.com/stylemart/internal/models"

	"gorm.io/gorm"
)

// ReportRepository runs the reporting aggregations. It only reads
// and sums; no business rules live here.
type ReportRepository interface {
	GetQuickStats() (QuickStatsRow, error)
	GetRevenueTrends(since time.Time) ([]RevenueTrendRow, error)
	GetCategorySales(since time.Time) ([]CategorySalesRow, error)
	GetBestSellers(since time.Time, limit int) ([]BestSellerRow, error)
}

// QuickStatsRow is the storewide totals snapshot.
type QuickStatsRow struct {
	Products  int64
	Orders    int64
	Customers int64
	Revenue   float64
}

// RevenueTrendRow is one day of order revenue.
type RevenueTrendRow struct {
	Day     string
	Revenue float64
	Orders  int64
}

// CategorySalesRow is the 30-day quantity sold for one category.
type CategorySalesRow struct {
	Category     string
	QuantitySold int64
}

// BestSellerRow is the 30-day quantity sold for one product.
type BestSellerRow struct {
	ProductID    uint
	QuantitySold int64
}

// GormReportRepository is the GORM implementation.
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a report repository.
func NewReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// GetQuickStats counts products, orders and customers, and sums
// revenue over all orders regardless of status.
func (r *GormReportRepository) GetQuickStats() (QuickStatsRow, error) {
	result := QuickStatsRow{}

	if err := r.db.Model(&models.Product{}).Count(&result.Products).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).Count(&result.Orders).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.User{}).Count(&result.Customers).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&result.Revenue).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetRevenueTrends groups order revenue by calendar day, ascending.
func (r *GormReportRepository) GetRevenueTrends(since time.Time) ([]RevenueTrendRow, error) {
	rows := make([]RevenueTrendRow, 0)
	dayExpr := dayBucketExpr(r.db, "created_at")
	if err := r.db.Model(&models.Order{}).
		Select(fmt.Sprintf("%s as day, COALESCE(SUM(total), 0) as revenue, COUNT(*) as orders", dayExpr)).
		Where("created_at >= ?", since).
		Group(dayExpr).
		Order("day asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetCategorySales sums category sales records since the cutoff,
// highest first.
func (r *GormReportRepository) GetCategorySales(since time.Time) ([]CategorySalesRow, error) {
	rows := make([]CategorySalesRow, 0)
	if err := r.db.Model(&models.CategorySale{}).
		Select("category, COALESCE(SUM(quantity_sold), 0) as quantity_sold").
		Where("date >= ?", since).
		Group("category").
		Order("quantity_sold DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetBestSellers sums product sales records since the cutoff, highest
// first, capped at limit.
func (r *GormReportRepository) GetBestSellers(since time.Time, limit int) ([]BestSellerRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows := make([]BestSellerRow, 0)
	if err := r.db.Model(&models.ProductSale{}).
		Select("product_id, COALESCE(SUM(quantity_sold), 0) as quantity_sold").
		Where("date >= ?", since).
		Group("product_id").
		Order("quantity_sold DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
