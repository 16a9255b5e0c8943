package main

import (
	"go-outtime/internal/app"
	"go-outtime/internal/bootstrap"

	"go.uber.org/zap"
)

func main() {
	cfg, logger, err := bootstrap.Init()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
