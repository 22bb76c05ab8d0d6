package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// dbDialectName returns the dialect name, defaulting to sqlite.
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// dayBucketExpr builds a YYYY-MM-DD text expression for grouping rows
// by calendar day, compatible with sqlite and postgres.
func dayBucketExpr(db *gorm.DB, column string) string {
	return dayBucketExprByDialect(dbDialectName(db), column)
}

func dayBucketExprByDialect(dialect, column string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", column)
	default:
		return fmt.Sprintf("CAST(date(%s) AS TEXT)", column)
	}
}

// likeOperator returns the case-insensitive LIKE operator for the dialect.
func likeOperator(db *gorm.DB) string {
	return likeOperatorByDialect(dbDialectName(db))
}

func likeOperatorByDialect(dialect string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return "ILIKE"
	default:
		return "LIKE"
	}
}
