package dashboard

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, gate gin.HandlerFunc) {
	board := r.Group("/dashboard")

	board.Use(gate)

	{
		board.GET("", h.GetState)
		board.PUT("/filters", h.UpdateFilters)
		board.DELETE("/filters", h.ClearFilters)
		board.PUT("/page", h.SetPage)
		board.PUT("/page-size", h.SetPerPage)
		board.POST("/more", h.LoadMore)
		board.PUT("/mode", h.SetMode)
		board.POST("/refresh", h.Refresh)
	}
}
