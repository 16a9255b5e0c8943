package app

import (
	"time"

	"go-outtime/internal/config"
	"go-outtime/internal/messaging/kafka"
	"go-outtime/internal/messaging/kafka/producer"
	"go-outtime/internal/shared/connection"

	"go.uber.org/zap"
)

func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	in, err := Connect(cfg, false)
	if err != nil {
		return err
	}
	defer in.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Brokers, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	ctx, stop := signalContext()
	defer stop()

	relay := producer.NewRelay(kafka.NewOutboxRepository(in.SQLDB), kafkaWriter, producer.RelayOptions{
		PollInterval: 3 * time.Second,
	}, logger)
	relay.Run(ctx)

	logger.Info("worker shut down")
	return nil
}
