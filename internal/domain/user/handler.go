package user

import (
	"errors"
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

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Missing required user fields")
		return
	}

	avatarPath, ok := h.saveAvatar(c, "")
	if !ok {
		return
	}

	u, err := h.service.Create(c.Request.Context(), &req, avatarPath)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, u)
}

func (h *Handler) Get(c *gin.Context) {
	u, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid user data")
		return
	}

	avatarPath, ok := h.saveAvatar(c, c.Param("id"))
	if !ok {
		return
	}

	u, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, avatarPath)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}

func (h *Handler) GetFavorites(c *gin.Context) {
	favorites, err := h.service.GetFavorites(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, favorites)
}

func (h *Handler) AddFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "itemId and itemType are required")
		return
	}

	userID := c.Param("id")
	if err := h.service.AddFavorite(c.Request.Context(), userID, req.ItemID, req.ItemType); err != nil {
		h.fail(c, err)
		return
	}

	favorites, err := h.service.GetFavorites(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, favorites)
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "itemId and itemType are required")
		return
	}

	userID := c.Param("id")
	if err := h.service.RemoveFavorite(c.Request.Context(), userID, req.ItemID, req.ItemType); err != nil {
		h.fail(c, err)
		return
	}

	favorites, err := h.service.GetFavorites(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, favorites)
}

func (h *Handler) saveAvatar(c *gin.Context, userID string) (string, bool) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		return "", true
	}

	base := ""
	if userID != "" {
		base = "avatar-" + userID
	}
	path, err := h.uploads.Save(fh, upload.KindAvatar, base)
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
		response.Message(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrAlreadyExists):
		response.Message(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, ErrValidation):
		response.Message(c, http.StatusBadRequest, "Invalid user data")
	case errors.Is(err, ErrInvalidItemType):
		response.Message(c, http.StatusBadRequest, err.Error())
	default:
		response.Message(c, http.StatusInternalServerError, "Server error")
	}
}
