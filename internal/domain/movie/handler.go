package movie

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
	movies, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Server error")
		return
	}
	response.JSON(c, http.StatusOK, movies)
}

func (h *Handler) Get(c *gin.Context) {
	m, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, m)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Missing required movie fields")
		return
	}

	posterPath, ok := h.savePoster(c, req.Slug, req.Title)
	if !ok {
		return
	}
	if posterPath == "" {
		posterPath = req.Poster
	}

	m, err := h.service.Create(c.Request.Context(), &req, posterPath)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, m)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid movie data")
		return
	}

	var title string
	if req.Title != nil {
		title = *req.Title
	}
	posterPath, ok := h.savePoster(c, "", title)
	if !ok {
		return
	}

	m, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, posterPath)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, m)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Movie removed")
}

func (h *Handler) savePoster(c *gin.Context, slugField, title string) (string, bool) {
	fh := formFile(c, "posterImage", "moviePoster")
	if fh == nil {
		return "", true
	}

	base := slugField
	if base == "" {
		base = title
	}
	path, err := h.uploads.Save(fh, upload.KindMoviePoster, base)
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
		response.Message(c, http.StatusNotFound, "Movie not found")
	case errors.Is(err, ErrValidation):
		response.Message(c, http.StatusBadRequest, "Invalid movie data")
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
