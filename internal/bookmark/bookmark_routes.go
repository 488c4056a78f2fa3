package bookmark

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, gate gin.HandlerFunc) {
	bookmarks := r.Group("/bookmarks")

	bookmarks.Use(gate)

	{
		bookmarks.GET("", h.GetAll)
		bookmarks.PUT("/:id", h.Add)
		bookmarks.DELETE("/:id", h.Remove)
	}
}
