package report

import (
	"go-outtime/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	reports := r.Group("/reports")
	reports.Use(auth)
	{
		reports.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.List,
		)
		reports.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "report", "export"),
			handler.Export,
		)
		reports.GET("/stats",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.Stats,
		)
		reports.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.GetByID,
		)
	}
}
