package models

import "time"

// ProductSale is a per-product sales record appended when an order is
// delivered. StockLeft captures the remaining stock at record time.
type ProductSale struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	ProductID    uint      `gorm:"index;not null" json:"product_id"`
	Date         time.Time `gorm:"index;not null" json:"date"`
	QuantitySold int       `gorm:"not null" json:"quantity_sold"`
	StockLeft    int       `gorm:"not null" json:"stock_left"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName sets the table name.
func (ProductSale) TableName() string {
	return "product_sales"
}

// CategorySale is a per-category sales record appended alongside
// ProductSale when an order is delivered.
type CategorySale struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Category     string    `gorm:"type:varchar(100);index;not null" json:"category"`
	Date         time.Time `gorm:"index;not null" json:"date"`
	QuantitySold int       `gorm:"not null" json:"quantity_sold"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName sets the table name.
func (CategorySale) TableName() string {
	return "category_sales"
}
