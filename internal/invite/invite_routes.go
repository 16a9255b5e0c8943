package invite

import (
	"go-outtime/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(employees *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	employees.POST("/invite",
		middleware.RateLimitByUser(0.5, 3),
		middleware.RBACAuthorize(rbacService, "invite", "create"),
		handler.Create,
	)
	employees.GET("/invites",
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(rbacService, "invite", "read"),
		handler.ListActive,
	)
	employees.DELETE("/invites/:token",
		middleware.RateLimitByUser(0.5, 3),
		middleware.RBACAuthorize(rbacService, "invite", "delete"),
		handler.Revoke,
	)
}

// RegisterBotRoutes mounts onboarding endpoints on the bot group, which is
// already guarded by the bot key.
func RegisterBotRoutes(bot *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc) {
	bot.POST("/register", idempotency, handler.Register)
	bot.GET("/validate-invite/:token", handler.Validate)
}
