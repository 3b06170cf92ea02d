package user

import "errors"

var (
	ErrNotFound        = errors.New("user not found")
	ErrAlreadyExists   = errors.New("user already exists")
	ErrValidation      = errors.New("invalid user data")
	ErrInvalidItemType = errors.New("invalid item type: must be book, movie or connection")
)
