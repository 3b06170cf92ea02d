package connection

import "errors"

var (
	ErrNotFound      = errors.New("connection not found")
	ErrValidation    = errors.New("invalid connection data")
	ErrMovieNotFound = errors.New("referenced movie not found")
	ErrBookNotFound  = errors.New("referenced book not found")
)
