package book

import (
	"time"

	"moviebooks/internal/pkg/utils"
)

// Book is a cataloged book. Genres are an ordered list of tags persisted
// as JSON text (single-string form input is split on commas).
type Book struct {
	ID          string           `json:"id" gorm:"primaryKey;size:36"`
	Title       string           `json:"title" gorm:"not null" validate:"required"`
	Author      string           `json:"author" gorm:"not null" validate:"required"`
	Year        int              `json:"year" gorm:"not null"`
	Genres      utils.StringList `json:"genres" gorm:"type:text"`
	Cover       string           `json:"cover" gorm:"not null" validate:"required"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Book) TableName() string { return "books" }
