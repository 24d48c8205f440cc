package database

import (
	"time"

	"gorm.io/gorm"
)

// OwnedBy restricts a query to a single user's records.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// DueBetween restricts a query to due dates in [start, end).
func DueBetween(start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("due_date >= ? AND due_date < ?", start, end)
	}
}
