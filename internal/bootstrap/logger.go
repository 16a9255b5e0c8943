package bootstrap

import (
	"go-outtime/internal/config"
	"go-outtime/internal/shared/apperror"

	"go.uber.org/zap"
)

// Init loads config, installs the global zap logger and registers the
// validator hooks. Every cmd calls it first.
func Init() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, nil, err
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(logger)

	apperror.Init()
	return cfg, logger, nil
}
