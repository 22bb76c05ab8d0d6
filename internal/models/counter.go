package models

import "time"

// Counter is a named monotonic sequence. Product IDs are allocated
// from the "product_id" counter so they stay sequential across
// deletes and restarts.
type Counter struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Seq       uint      `gorm:"not null;default:0" json:"seq"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name.
func (Counter) TableName() string {
	return "counters"
}
