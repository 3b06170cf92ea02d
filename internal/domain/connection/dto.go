package connection

import "time"

// CreateRequest carries a new connection between an existing movie and
// book. Screenshot may be a pre-existing path when no file is attached.
type CreateRequest struct {
	MovieID     string `json:"movieId" form:"movieId" binding:"required"`
	BookID      string `json:"bookId" form:"bookId" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	Timestamp   string `json:"timestamp" form:"timestamp" binding:"required"`
	Screenshot  string `json:"screenshot" form:"screenshot"`
	Context     string `json:"context" form:"context"`
	MovieSlug   string `json:"movieSlug" form:"movieSlug"`
}

// UpdateRequest is a patch: nil fields keep the stored value, any value
// that is present is applied, including empty values.
type UpdateRequest struct {
	MovieID     *string `json:"movieId" form:"movieId"`
	BookID      *string `json:"bookId" form:"bookId"`
	Description *string `json:"description" form:"description"`
	Timestamp   *string `json:"timestamp" form:"timestamp"`
	Screenshot  *string `json:"screenshot" form:"screenshot"`
	Context     *string `json:"context" form:"context"`
}

// UnifiedRequest is the composite form: fields for a new book, a new
// movie, and the connection between them, submitted in one multipart
// request alongside three images. Numeric fields arrive as text and are
// defaulted when unparsable.
type UnifiedRequest struct {
	BookTitle  string `form:"bookTitle"`
	BookAuthor string `form:"bookAuthor"`
	BookYear   string `form:"bookYear"`
	BookGenre  string `form:"bookGenre"`
	BookSlug   string `form:"bookSlug"`

	MovieTitle    string `form:"movieTitle"`
	MovieDirector string `form:"movieDirector"`
	MovieYear     string `form:"movieYear"`
	MovieGenre    string `form:"movieGenre"`
	MovieRating   string `form:"movieRating"`
	MovieSlug     string `form:"movieSlug"`

	Description string `form:"description"`
	Timestamp   string `form:"timestamp"`
	Context     string `form:"context"`
}

// MovieRef is the populated projection of the referenced movie.
type MovieRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Poster string `json:"poster"`
}

// BookRef is the populated projection of the referenced book.
type BookRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Cover  string `json:"cover"`
}

// Response is a connection with its movie and book references populated.
type Response struct {
	ID          string    `json:"id"`
	MovieID     string    `json:"movieId"`
	BookID      string    `json:"bookId"`
	Movie       *MovieRef `json:"movie,omitempty"`
	Book        *BookRef  `json:"book,omitempty"`
	Description string    `json:"description"`
	Timestamp   string    `json:"timestamp"`
	Screenshot  string    `json:"screenshot"`
	Context     string    `json:"context,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToResponse projects a connection for rendering, replacing the raw
// reference ids with partial records when they were preloaded.
func ToResponse(conn *Connection) *Response {
	resp := &Response{
		ID:          conn.ID,
		MovieID:     conn.MovieID,
		BookID:      conn.BookID,
		Description: conn.Description,
		Timestamp:   conn.Timestamp,
		Screenshot:  conn.Screenshot,
		Context:     conn.Context,
		CreatedAt:   conn.CreatedAt,
		UpdatedAt:   conn.UpdatedAt,
	}
	if conn.Movie != nil {
		resp.Movie = &MovieRef{ID: conn.Movie.ID, Title: conn.Movie.Title, Poster: conn.Movie.Poster}
	}
	if conn.Book != nil {
		resp.Book = &BookRef{ID: conn.Book.ID, Title: conn.Book.Title, Author: conn.Book.Author, Cover: conn.Book.Cover}
	}
	return resp
}

// ToResponses projects a list, keeping an empty slice over nil for JSON.
func ToResponses(conns []Connection) []*Response {
	out := make([]*Response, 0, len(conns))
	for i := range conns {
		out = append(out, ToResponse(&conns[i]))
	}
	return out
}
