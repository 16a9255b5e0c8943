package app

import (
	"fmt"

	"go-outtime/internal/company"
	"go-outtime/internal/config"
	"go-outtime/internal/messaging/kafka/consumer"
	"go-outtime/internal/telegram"

	"go.uber.org/zap"
)

func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")
	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	in, err := Connect(cfg, false)
	if err != nil {
		return err
	}
	defer in.Close()

	botAPI, err := newBotAPI(cfg)
	if err != nil {
		return err
	}

	reader := consumer.NewReader(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	defer reader.Close()

	handler := consumer.NewOnboardingHandler(
		company.NewRepository(in.GormDB),
		telegram.NewMessenger(botAPI, logger),
	)

	ctx, stop := signalContext()
	defer stop()

	consumer.ConsumeEmployeeLifecycle(ctx, reader, handler, logger)

	logger.Info("consumer shut down")
	return nil
}
