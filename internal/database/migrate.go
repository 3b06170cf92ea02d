package database

import (
	"gorm.io/gorm"

	"moviebooks/internal/domain/book"
	"moviebooks/internal/domain/connection"
	"moviebooks/internal/domain/movie"
	"moviebooks/internal/domain/user"
)

// Migrate brings the schema up to date for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&book.Book{},
		&movie.Movie{},
		&connection.Connection{},
		&user.User{},
		&user.Favorite{},
	)
}
