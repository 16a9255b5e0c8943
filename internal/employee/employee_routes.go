package employee

import (
	"go-outtime/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts on the shared /employees group so invite routes can
// live next to these without a second auth chain.
func RegisterRoutes(employees *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	employees.GET("",
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(rbacService, "employee", "read"),
		handler.GetAll,
	)
	employees.GET("/options",
		middleware.RateLimitByUser(5, 20),
		middleware.RBACAuthorize(rbacService, "employee", "read"),
		handler.GetOptions,
	)
	employees.GET("/:id",
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(rbacService, "employee", "read"),
		handler.GetByID,
	)
	employees.PUT("/:id",
		middleware.RateLimitByUser(0.5, 2),
		middleware.RBACAuthorize(rbacService, "employee", "update"),
		handler.Update,
	)
	employees.DELETE("/:id",
		middleware.RateLimitByUser(0.1, 1),
		middleware.RBACAuthorize(rbacService, "employee", "delete"),
		handler.Deactivate,
	)
}
