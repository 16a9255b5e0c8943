package user

import (
	"go-outtime/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	users := r.Group("/users", auth)
	users.GET("", middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetAll)
	users.GET("/:id", middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetByID)
	users.POST("",
		middleware.RateLimitByUser(0.2, 2),
		middleware.RBACAuthorize(rbacService, "user", "create"),
		handler.Create,
	)
	users.PUT("/:id/role", middleware.RBACAuthorize(rbacService, "user", "update"), handler.UpdateRole)
	users.PUT("/:id/password",
		middleware.RateLimitByUser(0.1, 1),
		middleware.RBACAuthorize(rbacService, "user", "update"),
		handler.ResetPassword,
	)
	users.DELETE("/:id", middleware.RBACAuthorize(rbacService, "user", "delete"), handler.Delete)
}
