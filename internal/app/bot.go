package app

import (
	"go-outtime/internal/config"
	"go-outtime/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// RunBot long-polls Telegram and drives the attendance and invite services
// in-process.
func RunBot(cfg *config.Config) error {
	logger := zap.L().Named("app.bot")

	in, err := Connect(cfg, false)
	if err != nil {
		return err
	}
	defer in.Close()

	svc, err := newServices(in, newRepositories(in))
	if err != nil {
		return err
	}

	botAPI, err := newBotAPI(cfg)
	if err != nil {
		return err
	}
	logger.Info("telegram bot authorized", zap.String("username", botAPI.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := botAPI.GetUpdatesChan(u)

	ctx, stop := signalContext()
	defer stop()

	go func() {
		<-ctx.Done()
		botAPI.StopReceivingUpdates()
	}()

	telegram.NewBot(botAPI, svc.attendance, svc.invite, logger).Run(ctx, updates)

	logger.Info("bot shut down")
	return nil
}
