package models

import (
	"time"

	"gorm.io/gorm"
)

// Group is an optional topical category a post may belong to.
// Deleting a group never deletes its posts; their group reference is cleared.
type Group struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Posts       []Post         `gorm:"foreignKey:GroupID" json:"posts,omitempty"`
}
