package dashboard

import (
	"go-outtime/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	dash := r.Group("/dashboard")
	dash.Use(auth, middleware.RateLimitByUser(3, 15), middleware.RBACAuthorize(rbacService, "dashboard", "read"))
	{
		dash.GET("", handler.Overview)
		dash.GET("/weekly", handler.Weekly)
		dash.GET("/quick-actions", handler.QuickActions)
		dash.GET("/notifications", handler.Notifications)
		dash.GET("/employees/:id", handler.EmployeeDetails)
	}

	r.GET("/settings/stats",
		auth,
		middleware.RateLimitByUser(1, 5),
		middleware.RBACAuthorize(rbacService, "settings", "read"),
		handler.SettingsStats,
	)
}
