package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, gate gin.HandlerFunc) {
	authGroup := r.Group("/auth")

	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", gate, h.Logout)
		authGroup.GET("/me", gate, h.Me)
	}
}
