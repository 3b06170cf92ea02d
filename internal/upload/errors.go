package upload

import "errors"

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrFileTooLarge    = errors.New("file too large (max 5 MB)")
	ErrInvalidFileType = errors.New("invalid file type: only images are accepted")
)
