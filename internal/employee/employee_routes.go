package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, gate gin.HandlerFunc) {
	employees := r.Group("/employees")

	employees.Use(gate)

	{
		employees.GET("", h.GetAll)
		employees.GET("/departments", h.GetDepartments)
		employees.POST("", h.Create)
		employees.POST("/refresh", h.Refresh)
		employees.GET("/:id", h.GetById)
		employees.POST("/:id/feedback", h.AddFeedback)
	}
}
