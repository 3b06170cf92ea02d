package connection

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"moviebooks/internal/pkg/response"
	"moviebooks/internal/upload"
)

type Handler struct {
	service *Service
	uploads *upload.Service
}

func NewHandler(service *Service, uploads *upload.Service) *Handler {
	return &Handler{service: service, uploads: uploads}
}

func (h *Handler) List(c *gin.Context) {
	conns, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}
	response.JSON(c, http.StatusOK, ToResponses(conns))
}

func (h *Handler) Get(c *gin.Context) {
	conn, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ToResponse(conn))
}

func (h *Handler) ListByMovie(c *gin.Context) {
	conns, err := h.service.ListByMovie(c.Request.Context(), c.Param("movieId"))
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}
	response.JSON(c, http.StatusOK, ToResponses(conns))
}

func (h *Handler) ListByBook(c *gin.Context) {
	conns, err := h.service.ListByBook(c.Request.Context(), c.Param("bookId"))
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}
	response.JSON(c, http.StatusOK, ToResponses(conns))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Missing required connection fields")
		return
	}

	screenshotPath, ok := h.saveScreenshot(c, req.MovieSlug)
	if !ok {
		return
	}

	conn, err := h.service.Create(c.Request.Context(), &req, screenshotPath)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, ToResponse(conn))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid connection data")
		return
	}

	screenshotPath, ok := h.saveScreenshot(c, "")
	if !ok {
		return
	}

	conn, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, screenshotPath)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ToResponse(conn))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Connection removed")
}

// CreateUnified accepts one multipart submission carrying a new book, a
// new movie, the connection between them, and all three images.
func (h *Handler) CreateUnified(c *gin.Context) {
	var req UnifiedRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.BookTitle == "" || req.BookAuthor == "" || req.MovieTitle == "" || req.MovieDirector == "" || req.Description == "" {
		response.Message(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	cover := formFile(c, "bookCover")
	poster := formFile(c, "moviePoster")
	screenshot := formFile(c, "screenshot")
	if cover == nil || poster == nil || screenshot == nil {
		response.Message(c, http.StatusBadRequest, "Missing required images")
		return
	}

	coverBase := req.BookSlug
	if coverBase == "" {
		coverBase = req.BookTitle
	}
	posterBase := req.MovieSlug
	if posterBase == "" {
		posterBase = req.MovieTitle
	}
	screenshotBase := ""
	if req.MovieSlug != "" {
		screenshotBase = "screenshot-" + req.MovieSlug
	}

	coverPath, ok := h.saveFile(c, cover, upload.KindBookCover, coverBase)
	if !ok {
		return
	}
	posterPath, ok := h.saveFile(c, poster, upload.KindMoviePoster, posterBase)
	if !ok {
		h.uploads.Remove(coverPath)
		return
	}
	screenshotPath, ok := h.saveFile(c, screenshot, upload.KindScreenshot, screenshotBase)
	if !ok {
		h.uploads.Remove(coverPath)
		h.uploads.Remove(posterPath)
		return
	}

	conn, bk, mv, err := h.service.CreateUnified(c.Request.Context(), &req, coverPath, posterPath, screenshotPath)
	if err != nil {
		// The transaction rolled the records back; drop the files too.
		h.uploads.Remove(coverPath)
		h.uploads.Remove(posterPath)
		h.uploads.Remove(screenshotPath)
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"connection": ToResponse(conn),
		"book":       bk,
		"movie":      mv,
	})
}

func (h *Handler) saveScreenshot(c *gin.Context, movieSlug string) (string, bool) {
	fh := formFile(c, "screenshotImage", "screenshot")
	if fh == nil {
		return "", true
	}

	base := ""
	if movieSlug != "" {
		base = "screenshot-" + movieSlug
	}
	return h.saveFile(c, fh, upload.KindScreenshot, base)
}

func (h *Handler) saveFile(c *gin.Context, fh *multipart.FileHeader, kind upload.Kind, base string) (string, bool) {
	path, err := h.uploads.Save(fh, kind, base)
	if err != nil {
		if errors.Is(err, upload.ErrInvalidFileType) || errors.Is(err, upload.ErrFileTooLarge) || errors.Is(err, upload.ErrEmptyFile) {
			response.Message(c, http.StatusBadRequest, err.Error())
		} else {
			response.Message(c, http.StatusInternalServerError, "Server error")
		}
		return "", false
	}
	return path, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Message(c, http.StatusNotFound, "Connection not found")
	case errors.Is(err, ErrValidation):
		response.Message(c, http.StatusBadRequest, "Invalid connection data")
	case errors.Is(err, ErrMovieNotFound), errors.Is(err, ErrBookNotFound):
		response.Message(c, http.StatusBadRequest, err.Error())
	default:
		response.Message(c, http.StatusInternalServerError, err.Error())
	}
}

func formFile(c *gin.Context, fields ...string) *multipart.FileHeader {
	for _, f := range fields {
		if fh, err := c.FormFile(f); err == nil {
			return fh
		}
	}
	return nil
}
