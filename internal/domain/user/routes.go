package user

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.GET("/:id/favorites", h.GetFavorites)
		users.POST("/:id/favorites", h.AddFavorite)
		users.DELETE("/:id/favorites", h.RemoveFavorite)
	}
}
