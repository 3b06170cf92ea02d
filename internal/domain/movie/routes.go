package movie

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	movies := rg.Group("/movies")
	{
		movies.GET("", h.List)
		movies.GET("/:id", h.Get)
		movies.POST("", h.Create)
		movies.PUT("/:id", h.Update)
		movies.DELETE("/:id", h.Delete)
	}
}
