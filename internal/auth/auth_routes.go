package auth

import (
	"go-outtime/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	g := r.Group("/auth")
	{
		g.POST("/register", middleware.RateLimitByIP(0.05, 3), handler.Register)
		g.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		g.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
		g.POST("/logout", handler.Logout)

		g.GET("/me", auth, middleware.RateLimitByUser(2, 5), handler.Me)
		g.POST("/change-password", auth, middleware.RateLimitByUser(0.1, 2), handler.ChangePassword)
	}
}
