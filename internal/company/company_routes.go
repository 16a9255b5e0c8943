package company

import (
	"go-outtime/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	settings := r.Group("/settings")
	settings.Use(auth)
	{
		settings.GET("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "settings", "read"),
			h.GetSettings,
		)
		// rare, administrative
		settings.PUT("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "settings", "update"),
			h.UpdateSettings,
		)
		settings.GET("/notifications/preview",
			middleware.RBACAuthorize(rbacService, "settings", "read"),
			h.NotificationPreview,
		)
	}
}
