package repository

import "time"

// ProductListFilter filters the product list query.
type ProductListFilter struct {
	Page     int
	PageSize int
	Category string
	Search   string
}

// OrderListFilter filters the order list query.
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// UserListFilter filters the user list query.
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
}

// SaleListFilter filters the sales record list queries.
type SaleListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
	Category  string
	DateFrom  *time.Time
	DateTo    *time.Time
}
