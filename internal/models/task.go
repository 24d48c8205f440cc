package models

import (
	"time"

	"gorm.io/gorm"
)

// Task priorities as stored. Canonicalization for display happens in the
// taskview package; the store keeps whatever the mutation boundary accepted.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is the stored task record. The ID is an opaque UUID assigned at
// creation and immutable afterwards.
type Task struct {
	ID          string         `gorm:"primarykey;type:varchar(36)" json:"id"`
	UserID      uint64         `gorm:"not null;index" json:"user_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	DueDate     *time.Time     `json:"due_date"`
	Tags        []string       `gorm:"serializer:json" json:"tags"`
	Priority    string         `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	IsCompleted bool           `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
