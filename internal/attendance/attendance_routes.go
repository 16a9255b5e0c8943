package attendance

import (
	"go-outtime/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterBotRoutes(bot *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc) {
	bot.POST("/start-day", middleware.RateLimitByIP(5, 20), idempotency, handler.StartDay)
	bot.POST("/end-day", middleware.RateLimitByIP(5, 20), idempotency, handler.EndDay)
	bot.GET("/status/:telegram_id", middleware.RateLimitByIP(10, 30), handler.GetStatus)
}
