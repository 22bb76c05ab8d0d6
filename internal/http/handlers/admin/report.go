package admin

import (
	"github.com/stylemart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// QuickStats returns storewide product, order, customer and revenue
// totals.
func (h *Handler) QuickStats(c *gin.Context) {
	stats, err := h.ReportService.QuickStats()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to compute quick stats", err)
		return
	}
	response.Success(c, stats)
}

// RevenueTrends returns 30 days of daily revenue.
func (h *Handler) RevenueTrends(c *gin.Context) {
	points, err := h.ReportService.RevenueTrends()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to compute revenue trends", err)
		return
	}
	response.Success(c, points)
}

// CategorySales returns 30 days of category sales totals.
func (h *Handler) CategorySales(c *gin.Context) {
	entries, err := h.ReportService.CategorySales()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to compute category sales", err)
		return
	}
	response.Success(c, entries)
}

// BestSellers returns the ten best selling products over 30 days.
func (h *Handler) BestSellers(c *gin.Context) {
	entries, err := h.ReportService.BestSellers()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to compute best sellers", err)
		return
	}
	response.Success(c, entries)
}
