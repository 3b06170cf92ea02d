package connection

import (
	"time"

	"moviebooks/internal/domain/book"
	"moviebooks/internal/domain/movie"
)

// Connection records one instance of a book appearing within a movie:
// the scene, where in the film it happens, and a screenshot.
type Connection struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	MovieID     string    `json:"movieId" gorm:"not null;index;size:36" validate:"required"`
	BookID      string    `json:"bookId" gorm:"not null;index;size:36" validate:"required"`
	Description string    `json:"description" gorm:"not null" validate:"required"`
	Timestamp   string    `json:"timestamp" gorm:"not null" validate:"required"`
	Screenshot  string    `json:"screenshot" gorm:"not null" validate:"required"`
	Context     string    `json:"context,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Preloaded for response projection, never serialized directly.
	Movie *movie.Movie `json:"-" gorm:"foreignKey:MovieID;references:ID"`
	Book  *book.Book   `json:"-" gorm:"foreignKey:BookID;references:ID"`
}

func (Connection) TableName() string { return "connections" }
