package movie

// CreateRequest carries a new movie. Poster may be a pre-existing path
// when no file is attached to the request.
type CreateRequest struct {
	Title       string `json:"title" form:"title" binding:"required"`
	Year        int    `json:"year" form:"year" binding:"required"`
	Director    string `json:"director" form:"director" binding:"required"`
	Genre       string `json:"genre" form:"genre" binding:"required"`
	Poster      string `json:"poster" form:"poster"`
	Rating      int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Description string `json:"description" form:"description"`
	Slug        string `json:"movieSlug" form:"movieSlug"`
}

// UpdateRequest is a patch: nil fields keep the stored value, any value
// that is present is applied, including zero or empty values.
type UpdateRequest struct {
	Title       *string `json:"title" form:"title"`
	Year        *int    `json:"year" form:"year"`
	Director    *string `json:"director" form:"director"`
	Genre       *string `json:"genre" form:"genre"`
	Poster      *string `json:"poster" form:"poster"`
	Rating      *int    `json:"rating" form:"rating"`
	Description *string `json:"description" form:"description"`
}
