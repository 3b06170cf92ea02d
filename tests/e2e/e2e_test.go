package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"moviebooks/internal/database"
	"moviebooks/internal/domain/book"
	"moviebooks/internal/domain/connection"
	"moviebooks/internal/domain/movie"
	"moviebooks/internal/domain/user"
	"moviebooks/internal/middleware"
	"moviebooks/internal/upload"
)

// pngHeader is enough for MIME sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

type TestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupTestSuite(t *testing.T) *TestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	uploads := upload.NewService(t.TempDir())

	bookRepo := book.NewRepository(db)
	movieRepo := movie.NewRepository(db)
	connRepo := connection.NewRepository(db)
	userRepo := user.NewRepository(db)

	bookHandler := book.NewHandler(book.NewService(bookRepo, connRepo), uploads)
	movieHandler := movie.NewHandler(movie.NewService(movieRepo, connRepo), uploads)
	connHandler := connection.NewHandler(connection.NewService(db, connRepo, bookRepo, movieRepo), uploads)
	userHandler := user.NewHandler(user.NewService(userRepo, bookRepo, movieRepo, connRepo), uploads)

	r := gin.New()
	r.Use(middleware.CORS(nil))
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	bookHandler.RegisterRoutes(api)
	movieHandler.RegisterRoutes(api)
	connHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)

	return &TestSuite{router: r, db: db}
}

func (s *TestSuite) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) doMultipart(t *testing.T, method, path string, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, content := range files {
		fw, err := w.CreateFormFile(field, field+".png")
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func (s *TestSuite) createBook(t *testing.T, title, author string, year int) string {
	t.Helper()
	w := s.doJSON(t, http.MethodPost, "/api/books", map[string]interface{}{
		"title":  title,
		"author": author,
		"year":   year,
		"genre":  "Fiction",
		"cover":  fmt.Sprintf("/images/books/%s.jpg", title),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["id"].(string)
}

func (s *TestSuite) createMovie(t *testing.T, title, director string, year int) string {
	t.Helper()
	w := s.doJSON(t, http.MethodPost, "/api/movies", map[string]interface{}{
		"title":    title,
		"director": director,
		"year":     year,
		"genre":    "Drama",
		"poster":   fmt.Sprintf("/images/movies/%s.jpg", title),
		"rating":   4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["id"].(string)
}

func (s *TestSuite) createConnection(t *testing.T, movieID, bookID string) string {
	t.Helper()
	w := s.doJSON(t, http.MethodPost, "/api/connections", map[string]interface{}{
		"movieId":     movieID,
		"bookId":      bookID,
		"description": "the book appears on a shelf",
		"timestamp":   "1:23:45",
		"screenshot":  "/images/screenshots/shelf.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["id"].(string)
}

func (s *TestSuite) createUser(t *testing.T, username string) string {
	t.Helper()
	w := s.doJSON(t, http.MethodPost, "/api/users", map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"name":     "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["id"].(string)
}

func TestCreateBook_EchoesSubmittedFields(t *testing.T) {
	s := setupTestSuite(t)

	w := s.doJSON(t, http.MethodPost, "/api/books", map[string]interface{}{
		"title":  "1984",
		"author": "Orwell",
		"year":   1949,
		"genre":  "Dystopian",
		"cover":  "/images/books/1984.jpg",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "1984", body["title"])
	assert.Equal(t, "Orwell", body["author"])
	assert.Equal(t, float64(1949), body["year"])
	assert.Equal(t, "/images/books/1984.jpg", body["cover"])
	assert.Equal(t, []interface{}{"Dystopian"}, body["genres"])
}

func TestCreateBook_MissingFields(t *testing.T) {
	s := setupTestSuite(t)

	w := s.doJSON(t, http.MethodPost, "/api/books", map[string]interface{}{
		"title": "No Author",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decode(t, w)["message"])
}

func TestCreateBook_MissingGenreRejected(t *testing.T) {
	s := setupTestSuite(t)

	w := s.doJSON(t, http.MethodPost, "/api/books", map[string]interface{}{
		"title":  "1984",
		"author": "Orwell",
		"year":   1949,
		"cover":  "/images/books/1984.jpg",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.NotEmpty(t, decode(t, w)["message"])

	assert.Len(t, decodeList(t, s.doJSON(t, http.MethodGet, "/api/books", nil)), 0)
}

func TestCreateMovie_MissingGenreRejected(t *testing.T) {
	s := setupTestSuite(t)

	w := s.doJSON(t, http.MethodPost, "/api/movies", map[string]interface{}{
		"title":    "Blade Runner",
		"director": "Ridley Scott",
		"year":     1982,
		"poster":   "/images/movies/blade-runner.jpg",
		"rating":   5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	assert.Len(t, decodeList(t, s.doJSON(t, http.MethodGet, "/api/movies", nil)), 0)
}

func TestGetBook_NotFound(t *testing.T) {
	s := setupTestSuite(t)

	w := s.doJSON(t, http.MethodGet, "/api/books/nonexistent-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Book not found", decode(t, w)["message"])
}

func TestUpdateBook_AbsentFieldsKeepValues(t *testing.T) {
	s := setupTestSuite(t)
	id := s.createBook(t, "Dune", "Frank Herbert", 1965)

	w := s.doJSON(t, http.MethodPut, "/api/books/"+id, map[string]interface{}{
		"title": "Dune Messiah",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Dune Messiah", body["title"])
	assert.Equal(t, "Frank Herbert", body["author"], "omitted field keeps previous value")
	assert.Equal(t, float64(1965), body["year"])
}

func TestCreateBook_MultipartUploadStoresCover(t *testing.T) {
	s := setupTestSuite(t)

	w := s.doMultipart(t, http.MethodPost, "/api/books",
		map[string]string{
			"title":  "The Great Gatsby",
			"author": "F. Scott Fitzgerald",
			"year":   "1925",
			"genre":  "Classic",
		},
		map[string][]byte{"bookCover": pngHeader},
	)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	cover := decode(t, w)["cover"].(string)
	assert.Contains(t, cover, "/images/books/the-great-gatsby-")
}

func TestCreateBook_TextFileCoverRejected(t *testing.T) {
	s := setupTestSuite(t)

	w := s.doMultipart(t, http.MethodPost, "/api/books",
		map[string]string{
			"title":  "Sneaky",
			"author": "Nobody",
			"year":   "2020",
			"genre":  "Mystery",
		},
		map[string][]byte{"bookCover": []byte("definitely plain text")},
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No record persisted
	assert.Len(t, decodeList(t, s.doJSON(t, http.MethodGet, "/api/books", nil)), 0)
}

func TestConnectionLifecycle(t *testing.T) {
	s := setupTestSuite(t)
	bookID := s.createBook(t, "Dune", "Frank Herbert", 1965)
	movieID := s.createMovie(t, "Dune", "Denis Villeneuve", 2021)
	connID := s.createConnection(t, movieID, bookID)

	// Populated read
	w := s.doJSON(t, http.MethodGet, "/api/connections/"+connID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	movieRef := body["movie"].(map[string]interface{})
	bookRef := body["book"].(map[string]interface{})
	assert.Equal(t, "Dune", movieRef["title"])
	assert.Equal(t, "Frank Herbert", bookRef["author"])

	// Filter by movie
	w = s.doJSON(t, http.MethodGet, "/api/connections/movie/"+movieID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	// Delete, then the id is gone
	w = s.doJSON(t, http.MethodDelete, "/api/connections/"+connID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Connection removed", decode(t, w)["message"])

	w = s.doJSON(t, http.MethodGet, "/api/connections/"+connID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Connection not found", decode(t, w)["message"])
}

func TestCreateConnection_DanglingReferenceRejected(t *testing.T) {
	s := setupTestSuite(t)
	bookID := s.createBook(t, "Dune", "Frank Herbert", 1965)

	w := s.doJSON(t, http.MethodPost, "/api/connections", map[string]interface{}{
		"movieId":     "no-such-movie",
		"bookId":      bookID,
		"description": "ghost reference",
		"timestamp":   "0:01:00",
		"screenshot":  "/images/screenshots/x.jpg",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBook_PrunesConnections(t *testing.T) {
	s := setupTestSuite(t)
	bookID := s.createBook(t, "Dune", "Frank Herbert", 1965)
	movieID := s.createMovie(t, "Dune", "Denis Villeneuve", 2021)
	connID := s.createConnection(t, movieID, bookID)

	w := s.doJSON(t, http.MethodDelete, "/api/books/"+bookID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.doJSON(t, http.MethodGet, "/api/connections/"+connID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "dependent connection should be gone")
}

func TestUnifiedWorkflow_MissingFieldCreatesNothing(t *testing.T) {
	s := setupTestSuite(t)

	w := s.doMultipart(t, http.MethodPost, "/api/connections/unified",
		map[string]string{
			// bookTitle missing
			"bookAuthor":    "Frank Herbert",
			"movieTitle":    "Dune",
			"movieDirector": "Denis Villeneuve",
			"description":   "dashboard paperback",
		},
		map[string][]byte{
			"bookCover":   pngHeader,
			"moviePoster": pngHeader,
			"screenshot":  pngHeader,
		},
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", decode(t, w)["message"])

	assert.Len(t, decodeList(t, s.doJSON(t, http.MethodGet, "/api/books", nil)), 0)
	assert.Len(t, decodeList(t, s.doJSON(t, http.MethodGet, "/api/movies", nil)), 0)
	assert.Len(t, decodeList(t, s.doJSON(t, http.MethodGet, "/api/connections", nil)), 0)
}

func TestUnifiedWorkflow_MissingImageCreatesNothing(t *testing.T) {
	s := setupTestSuite(t)

	w := s.doMultipart(t, http.MethodPost, "/api/connections/unified",
		map[string]string{
			"bookTitle":     "Dune",
			"bookAuthor":    "Frank Herbert",
			"movieTitle":    "Dune",
			"movieDirector": "Denis Villeneuve",
			"description":   "dashboard paperback",
		},
		map[string][]byte{
			"bookCover":   pngHeader,
			"moviePoster": pngHeader,
			// screenshot missing
		},
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required images", decode(t, w)["message"])
	assert.Len(t, decodeList(t, s.doJSON(t, http.MethodGet, "/api/books", nil)), 0)
}

func TestUnifiedWorkflow_CreatesAllThreeRecords(t *testing.T) {
	s := setupTestSuite(t)

	w := s.doMultipart(t, http.MethodPost, "/api/connections/unified",
		map[string]string{
			"bookTitle":     "Do Androids Dream of Electric Sheep?",
			"bookAuthor":    "Philip K. Dick",
			"bookYear":      "1968",
			"bookGenre":     "Science Fiction",
			"movieTitle":    "Blade Runner",
			"movieDirector": "Ridley Scott",
			"movieYear":     "1982",
			"movieRating":   "5",
			"description":   "Deckard's shelf holds a worn paperback",
			"timestamp":     "1:12:40",
		},
		map[string][]byte{
			"bookCover":   pngHeader,
			"moviePoster": pngHeader,
			"screenshot":  pngHeader,
		},
	)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, true, body["success"])

	bk := body["book"].(map[string]interface{})
	mv := body["movie"].(map[string]interface{})
	conn := body["connection"].(map[string]interface{})

	assert.Equal(t, bk["id"], conn["bookId"], "connection must reference the just-created book")
	assert.Equal(t, mv["id"], conn["movieId"], "connection must reference the just-created movie")
	assert.Equal(t, "No additional context provided", conn["context"])

	// Populated projection in the same response
	assert.Equal(t, "Blade Runner", conn["movie"].(map[string]interface{})["title"])
	assert.Equal(t, "Philip K. Dick", conn["book"].(map[string]interface{})["author"])

	// Exactly one record of each
	assert.Len(t, decodeList(t, s.doJSON(t, http.MethodGet, "/api/books", nil)), 1)
	assert.Len(t, decodeList(t, s.doJSON(t, http.MethodGet, "/api/movies", nil)), 1)
	assert.Len(t, decodeList(t, s.doJSON(t, http.MethodGet, "/api/connections", nil)), 1)
}

func TestFavorites_AddIsIdempotent(t *testing.T) {
	s := setupTestSuite(t)
	userID := s.createUser(t, "reader42")
	bookID := s.createBook(t, "Dune", "Frank Herbert", 1965)

	add := map[string]interface{}{"itemId": bookID, "itemType": "book"}
	w := s.doJSON(t, http.MethodPost, "/api/users/"+userID+"/favorites", add)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.doJSON(t, http.MethodPost, "/api/users/"+userID+"/favorites", add)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	books := body["books"].([]interface{})
	assert.Len(t, books, 1, "adding twice keeps the id exactly once")
}

func TestFavorites_RemoveAbsentIsNoOp(t *testing.T) {
	s := setupTestSuite(t)
	userID := s.createUser(t, "reader42")

	w := s.doJSON(t, http.MethodDelete, "/api/users/"+userID+"/favorites",
		map[string]interface{}{"itemId": "never-added", "itemType": "movie"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestFavorites_UnknownItemTypeRejected(t *testing.T) {
	s := setupTestSuite(t)
	userID := s.createUser(t, "reader42")

	w := s.doJSON(t, http.MethodPost, "/api/users/"+userID+"/favorites",
		map[string]interface{}{"itemId": "x", "itemType": "playlist"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUser_DuplicateRejected(t *testing.T) {
	s := setupTestSuite(t)
	s.createUser(t, "reader42")

	w := s.doJSON(t, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "reader42",
		"email":    "reader42@example.com",
		"name":     "Clone",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decode(t, w)["message"])
}

func TestUser_ProfileUpdateKeepsAvatarWithoutUpload(t *testing.T) {
	s := setupTestSuite(t)
	userID := s.createUser(t, "reader42")

	w := s.doJSON(t, http.MethodPut, "/api/users/"+userID, map[string]interface{}{
		"bio": "new bio",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "new bio", body["bio"])
	assert.Equal(t, "/images/avatars/default-avatar.jpg", body["avatar"])
	assert.Equal(t, "Test User", body["name"], "omitted field keeps previous value")
}
