package book

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.GET("", h.List)
		books.GET("/:id", h.Get)
		books.POST("", h.Create)
		books.PUT("/:id", h.Update)
		books.DELETE("/:id", h.Delete)
	}
}
