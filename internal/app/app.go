package app

import (
	"context"
	"net/http"
	"time"

	"go-outtime/internal/config"
	"go-outtime/internal/middleware"
	"go-outtime/internal/shared/apperror"
	"go-outtime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the stores and mounts every route on router. The
// returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	in, err := Connect(cfg, true)
	if err != nil {
		return nil, err
	}

	svc, err := newServices(in, newRepositories(in))
	if err != nil {
		in.Close()
		return nil, err
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(in.Logger.Named("http")),
		gin.Recovery(),
	)
	router.GET("/health", healthHandler(in))
	registerModules(router, in, svc)

	zap.L().Info("routes registered", zap.Int("count", len(router.Routes())))
	return in.Close, nil
}

func healthHandler(in *Infra) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "ok", "redis": "ok"}
		healthy := true
		if err := in.SQLDB.PingContext(ctx); err != nil {
			status["database"] = err.Error()
			healthy = false
		}
		if in.Redis != nil {
			if err := in.Redis.Ping(ctx).Err(); err != nil {
				status["redis"] = err.Error()
				healthy = false
			}
		}

		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Dependency check failed", status)
			return
		}
		response.Success(c, http.StatusOK, status, nil)
	}
}
