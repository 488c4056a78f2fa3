package analytics

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, gate gin.HandlerFunc) {
	stats := r.Group("/analytics")

	stats.Use(gate)

	{
		stats.GET("/departments", h.GetDepartmentStats)
		stats.GET("/bookmark-trends", h.GetBookmarkTrends)
	}
}
