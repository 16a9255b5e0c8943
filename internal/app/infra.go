package app

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"go-outtime/internal/config"
	"go-outtime/internal/shared/connection"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the live connections one process needs.
type Infra struct {
	Config *config.Config
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
	Logger *zap.Logger
}

func Connect(cfg *config.Config, withRedis bool) (*Infra, error) {
	logger := zap.L()

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres(), cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	in := &Infra{Config: cfg, GormDB: gormDB, SQLDB: sqlDB, Logger: logger}
	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		in.Redis = rdb
	}
	return in, nil
}

func (in *Infra) Close() {
	if in.Redis != nil {
		_ = in.Redis.Close()
	}
	if in.SQLDB != nil {
		_ = in.SQLDB.Close()
	}
}

func newBotAPI(cfg *config.Config) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = !cfg.IsProduction() && os.Getenv("TELEGRAM_DEBUG") == "true"
	return api, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
