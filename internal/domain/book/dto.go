package book

// CreateRequest carries a new book. Cover may be a pre-existing path when
// no file is attached to the request.
type CreateRequest struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Author      string `json:"author" form:"author" binding:"required"`
	Year        int    `json:"year" form:"year" binding:"required"`
	Genre       string `json:"genre" form:"genre" binding:"required"`
	Cover       string `json:"cover" form:"cover"`
	Description string `json:"description" form:"description"`
	Slug        string `json:"bookSlug" form:"bookSlug"`
}

// UpdateRequest is a patch: nil fields keep the stored value, any value
// that is present is applied, including zero or empty values.
type UpdateRequest struct {
	Title       *string `json:"title" form:"title"`
	Author      *string `json:"author" form:"author"`
	Year        *int    `json:"year" form:"year"`
	Genre       *string `json:"genre" form:"genre"`
	Cover       *string `json:"cover" form:"cover"`
	Description *string `json:"description" form:"description"`
}
