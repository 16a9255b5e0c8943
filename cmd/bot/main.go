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

	if err := app.RunBot(cfg); err != nil {
		logger.Fatal("run bot failed", zap.Error(err))
	}
}
