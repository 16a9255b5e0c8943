package producer

import (
	"context"
	"time"

	"go-outtime/internal/messaging/kafka"

	"go.uber.org/zap"
)

const batchSize = 50

type RelayOptions struct {
	PollInterval time.Duration // default 3s
	// Sent events older than Retention are deleted once per PurgeInterval.
	Retention     time.Duration // default 7 days
	PurgeInterval time.Duration // default 1h
}

// Relay moves outbox rows to Kafka. Delivery is at least once; consumers
// dedupe on the event_id header.
type Relay struct {
	repo   kafka.OutboxRepository
	writer MessageWriter
	opts   RelayOptions
	logger *zap.Logger
}

func NewRelay(repo kafka.OutboxRepository, writer MessageWriter, opts RelayOptions, logger ...*zap.Logger) *Relay {
	l := zap.L().Named("kafka.relay")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.relay")
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 3 * time.Second
	}
	if opts.Retention <= 0 {
		opts.Retention = 7 * 24 * time.Hour
	}
	if opts.PurgeInterval <= 0 {
		opts.PurgeInterval = time.Hour
	}
	return &Relay{repo: repo, writer: writer, opts: opts, logger: l}
}

// Run blocks until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	poll := time.NewTicker(r.opts.PollInterval)
	defer poll.Stop()
	purge := time.NewTicker(r.opts.PurgeInterval)
	defer purge.Stop()

	r.logger.Info("relay started",
		zap.Duration("poll_interval", r.opts.PollInterval),
		zap.Duration("retention", r.opts.Retention),
	)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("relay stopped")
			return
		case <-poll.C:
			if _, err := r.Flush(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("flush outbox failed", zap.Error(err))
			}
		case now := <-purge.C:
			if _, err := r.Purge(ctx, now); err != nil && ctx.Err() == nil {
				r.logger.Error("purge outbox failed", zap.Error(err))
			}
		}
	}
}

// Flush publishes one batch of due events and returns how many went out. A
// failed publish is scheduled for retry and the batch carries on.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	events, err := r.repo.FetchDue(ctx, batchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		log := r.logger.With(
			zap.String("event_id", ev.ID),
			zap.String("event_type", ev.EventType),
			zap.String("topic", ev.Topic),
		)

		if err := publishEvent(ctx, r.writer, ev); err != nil {
			attempt := ev.Attempts + 1
			if attempt >= kafka.MaxAttempts {
				log.Error("giving up on outbox event", zap.Int("attempt", attempt), zap.Error(err))
			} else {
				log.Warn("publish failed, will retry", zap.Int("attempt", attempt), zap.Error(err))
			}
			if err := r.repo.MarkFailed(ctx, ev.ID, err.Error()); err != nil {
				log.Error("mark failed", zap.Error(err))
			}
			continue
		}

		if err := r.repo.MarkSent(ctx, ev.ID); err != nil {
			// published but not marked: it will be sent again
			log.Error("mark sent", zap.Error(err))
			continue
		}
		sent++
		log.Debug("outbox event published", zap.String("request_id", ev.RequestID))
	}

	if len(events) > 0 {
		r.logger.Info("outbox batch flushed", zap.Int("due", len(events)), zap.Int("sent", sent))
	}
	return sent, nil
}

func (r *Relay) Purge(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.repo.PurgeSent(ctx, now.Add(-r.opts.Retention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.logger.Info("purged sent outbox events", zap.Int64("deleted", n))
	}
	return n, nil
}
