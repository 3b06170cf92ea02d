package user

import (
	"moviebooks/internal/domain/book"
	"moviebooks/internal/domain/connection"
	"moviebooks/internal/domain/movie"
)

type CreateRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Name     string `json:"name" form:"name" binding:"required"`
	Bio      string `json:"bio" form:"bio"`
}

// UpdateRequest is a patch: nil fields keep the stored value. The avatar
// changes only when a new file is uploaded.
type UpdateRequest struct {
	Name *string `json:"name" form:"name"`
	Bio  *string `json:"bio" form:"bio"`
}

// FavoriteRequest adds or removes one item from a favorites list.
type FavoriteRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	ItemType string `json:"itemType" binding:"required"`
}

// FavoritesResponse holds the three populated lists.
type FavoritesResponse struct {
	Books       []book.Book            `json:"books"`
	Movies      []movie.Movie          `json:"movies"`
	Connections []*connection.Response `json:"connections"`
}
