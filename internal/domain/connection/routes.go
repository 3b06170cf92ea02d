package connection

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	conns := rg.Group("/connections")
	{
		conns.GET("", h.List)
		conns.GET("/movie/:movieId", h.ListByMovie)
		conns.GET("/book/:bookId", h.ListByBook)
		conns.GET("/:id", h.Get)
		conns.POST("", h.Create)
		conns.POST("/unified", h.CreateUnified)
		conns.PUT("/:id", h.Update)
		conns.DELETE("/:id", h.Delete)
	}
}
