package book

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
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}
	response.JSON(c, http.StatusOK, books)
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, b)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Missing required book fields")
		return
	}

	coverPath, ok := h.saveCover(c, req.Slug, req.Title)
	if !ok {
		return
	}
	if coverPath == "" {
		coverPath = req.Cover
	}

	b, err := h.service.Create(c.Request.Context(), &req, coverPath)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, b)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid book data")
		return
	}

	var title string
	if req.Title != nil {
		title = *req.Title
	}
	coverPath, ok := h.saveCover(c, "", title)
	if !ok {
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, coverPath)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Book removed")
}

// saveCover stores an attached cover image, if any. Returns ok=false when
// the upload was rejected and a response has already been written.
func (h *Handler) saveCover(c *gin.Context, slugField, title string) (string, bool) {
	fh := formFile(c, "coverImage", "bookCover")
	if fh == nil {
		return "", true
	}

	base := slugField
	if base == "" {
		base = title
	}
	path, err := h.uploads.Save(fh, upload.KindBookCover, base)
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
		response.Message(c, http.StatusNotFound, "Book not found")
	case errors.Is(err, ErrValidation):
		response.Message(c, http.StatusBadRequest, "Invalid book data")
	default:
		response.Message(c, http.StatusInternalServerError, err.Error())
	}
}

// formFile returns the first file present under any of the given field
// names (the API historically accepts both coverImage and bookCover).
func formFile(c *gin.Context, fields ...string) *multipart.FileHeader {
	for _, f := range fields {
		if fh, err := c.FormFile(f); err == nil {
			return fh
		}
	}
	return nil
}
