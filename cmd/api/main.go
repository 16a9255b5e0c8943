package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go-outtime/internal/app"
	"go-outtime/internal/bootstrap"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, logger, err := bootstrap.Init()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = bootstrap.StartHTTPServer(ctx, r, bootstrap.ServerConfig{
		Port:         cfg.App.Port,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, bootstrap.NewStdoutAuditLogger(logger))
	if err != nil {
		logger.Error("http server failed", zap.Error(err))
	}
}
