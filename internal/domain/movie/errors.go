package movie

import "errors"

var (
	ErrNotFound   = errors.New("movie not found")
	ErrValidation = errors.New("invalid movie data")
)
