package app

import (
	"context"
	"time"

	"go-outtime/internal/config"
	"go-outtime/internal/notification"
	"go-outtime/internal/shared/connection"
	"go-outtime/internal/telegram"

	"go.uber.org/zap"
)

// newScheduler wires the notifier to Telegram. Without Redis the pass guard
// only protects a single replica.
func newScheduler(cfg *config.Config, in *Infra) (*notification.Scheduler, error) {
	logger := zap.L()

	botAPI, err := newBotAPI(cfg)
	if err != nil {
		return nil, err
	}
	r := newRepositories(in)

	notifier := notification.NewNotifier(
		r.employee, r.attendance, r.invite,
		telegram.NewMessenger(botAPI, logger),
		nil,
		notification.Options{SendDelay: cfg.Scheduler.SendDelay},
		logger,
	)

	var guard notification.PassGuard = notification.NewMemoryPassGuard()
	if in.Redis != nil {
		guard = notification.NewRedisPassGuard(in.Redis)
	}

	weekdays, err := cfg.Scheduler.WeekdaySet()
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.Scheduler.CleanupTimezone)
	if err != nil {
		return nil, err
	}

	return notification.NewScheduler(notifier, r.company, guard, nil, notification.SchedulerOptions{
		LateOffset:      cfg.Scheduler.LateOffset,
		Weekdays:        weekdays,
		CleanupSpec:     cfg.Scheduler.CleanupSpec,
		CleanupLocation: loc,
	}, logger), nil
}

func RunScheduler(cfg *config.Config) error {
	logger := zap.L().Named("app.scheduler")

	in, err := Connect(cfg, false)
	if err != nil {
		return err
	}
	defer in.Close()

	if rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 1); err == nil {
		in.Redis = rdb
	} else {
		logger.Warn("redis unavailable, pass guard is process local", zap.Error(err))
	}

	sched, err := newScheduler(cfg, in)
	if err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sched.Stop(shutdownCtx); err != nil {
		logger.Warn("scheduler did not stop in time", zap.Error(err))
	}
	return nil
}

// RunPass fires one pass immediately; companyID "" means every company.
func RunPass(ctx context.Context, cfg *config.Config, kind notification.Kind, companyID string) (notification.PassResult, error) {
	in, err := Connect(cfg, false)
	if err != nil {
		return notification.PassResult{}, err
	}
	defer in.Close()

	sched, err := newScheduler(cfg, in)
	if err != nil {
		return notification.PassResult{}, err
	}
	return sched.Run(ctx, kind, companyID)
}
