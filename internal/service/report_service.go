package service

import (
	"context"
	"time"

	"github.com/stylemart/internal/cache"
	"github.com/stylemart/internal/logger"
	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"

	"github.com/shopspring/decimal"
)

const reportWindowDays = 30

const (
	quickStatsCacheKey = "report:quick_stats"
	quickStatsCacheTTL = time.Minute
)

// QuickStats is the storewide totals response.
type QuickStats struct {
	Products  int64        `json:"products"`
	Orders    int64        `json:"orders"`
	Revenue   models.Money `json:"revenue"`
	Customers int64        `json:"customers"`
}

// RevenueTrendPoint is one day of revenue in the trend series.
type RevenueTrendPoint struct {
	Day     string       `json:"day"`
	Revenue models.Money `json:"revenue"`
	Orders  int64        `json:"orders"`
}

// CategorySalesEntry is one category's quantity over the window.
type CategorySalesEntry struct {
	Category     string `json:"category"`
	QuantitySold int64  `json:"quantity_sold"`
}

// BestSellerEntry is one product's quantity over the window.
type BestSellerEntry struct {
	ProductID    uint  `json:"product_id"`
	QuantitySold int64 `json:"quantity_sold"`
}

// ReportService serves the admin reporting endpoints. Every window
// query scans the last 30 days.
type ReportService struct {
	repo repository.ReportRepository
}

// NewReportService creates a report service.
func NewReportService(repo repository.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

func reportWindowStart() time.Time {
	return time.Now().AddDate(0, 0, -reportWindowDays)
}

// QuickStats counts products, orders and customers and sums revenue
// over all orders regardless of status.
func (s *ReportService) QuickStats() (*QuickStats, error) {
	ctx := context.Background()
	var cached QuickStats
	if hit, err := cache.GetJSON(ctx, quickStatsCacheKey, &cached); err != nil {
		logger.Warnw("report_quick_stats_cache_read_failed", "error", err)
	} else if hit {
		return &cached, nil
	}

	row, err := s.repo.GetQuickStats()
	if err != nil {
		return nil, err
	}
	stats := &QuickStats{
		Products:  row.Products,
		Orders:    row.Orders,
		Revenue:   models.NewMoneyFromDecimal(decimal.NewFromFloat(row.Revenue)),
		Customers: row.Customers,
	}
	if err := cache.SetJSON(ctx, quickStatsCacheKey, stats, quickStatsCacheTTL); err != nil {
		logger.Warnw("report_quick_stats_cache_write_failed", "error", err)
	}
	return stats, nil
}

// InvalidateQuickStats drops the cached snapshot so the next read
// re-scans. Called after mutations that change the counts.
func (s *ReportService) InvalidateQuickStats() {
	if err := cache.Del(context.Background(), quickStatsCacheKey); err != nil {
		logger.Warnw("report_quick_stats_cache_del_failed", "error", err)
	}
}

// RevenueTrends groups 30 days of order revenue by day, ascending.
func (s *ReportService) RevenueTrends() ([]RevenueTrendPoint, error) {
	rows, err := s.repo.GetRevenueTrends(reportWindowStart())
	if err != nil {
		return nil, err
	}
	points := make([]RevenueTrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, RevenueTrendPoint{
			Day:     row.Day,
			Revenue: models.NewMoneyFromDecimal(decimal.NewFromFloat(row.Revenue)),
			Orders:  row.Orders,
		})
	}
	return points, nil
}

// CategorySales sums 30 days of category sales records, highest first.
func (s *ReportService) CategorySales() ([]CategorySalesEntry, error) {
	rows, err := s.repo.GetCategorySales(reportWindowStart())
	if err != nil {
		return nil, err
	}
	entries := make([]CategorySalesEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, CategorySalesEntry{
			Category:     row.Category,
			QuantitySold: row.QuantitySold,
		})
	}
	return entries, nil
}

// BestSellers sums 30 days of product sales records, highest first,
// capped at ten products.
func (s *ReportService) BestSellers() ([]BestSellerEntry, error) {
	rows, err := s.repo.GetBestSellers(reportWindowStart(), 10)
	if err != nil {
		return nil, err
	}
	entries := make([]BestSellerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, BestSellerEntry{
			ProductID:    row.ProductID,
			QuantitySold: row.QuantitySold,
		})
	}
	return entries, nil
}
