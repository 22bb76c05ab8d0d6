package repository

import (
	"github.com/stylemart/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CounterRepository allocates values from named sequences.
type CounterRepository interface {
	Next(name string) (uint, error)
	WithTx(tx *gorm.DB) CounterRepository
}

// GormCounterRepository is the GORM implementation.
type GormCounterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a counter repository.
func NewCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCounterRepository) WithTx(tx *gorm.DB) CounterRepository {
	if tx == nil {
		return r
	}
	return &GormCounterRepository{db: tx}
}

// Next increments the named counter and returns the new value. The
// row is created on first use. The in-place UPDATE takes a row lock
// on postgres, so concurrent callers get distinct values.
func (r *GormCounterRepository) Next(name string) (uint, error) {
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.Counter{Name: name, Seq: 0}).Error; err != nil {
		return 0, err
	}

	if err := r.db.Model(&models.Counter{}).
		Where("name = ?", name).
		Update("seq", gorm.Expr("seq + ?", 1)).Error; err != nil {
		return 0, err
	}

	var counter models.Counter
	if err := r.db.Where("name = ?", name).First(&counter).Error; err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
