package movie

import (
	"time"

	"moviebooks/internal/pkg/utils"
)

// Movie is a cataloged film. Rating is a 1-5 star value.
type Movie struct {
	ID          string           `json:"id" gorm:"primaryKey;size:36"`
	Title       string           `json:"title" gorm:"not null" validate:"required"`
	Year        int              `json:"year" gorm:"not null"`
	Director    string           `json:"director" gorm:"not null" validate:"required"`
	Genres      utils.StringList `json:"genres" gorm:"type:text"`
	Poster      string           `json:"poster" gorm:"not null" validate:"required"`
	Rating      int              `json:"rating" gorm:"not null" validate:"min=1,max=5"`
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Movie) TableName() string { return "movies" }
