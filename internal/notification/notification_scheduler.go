package notification

import (
	"context"
	"errors"
	"time"

	"go-outtime/internal/company"
	"go-outtime/internal/shared/clock"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const tickSpec = "* * * * *"

type SchedulerOptions struct {
	LateOffset      time.Duration
	Weekdays        map[time.Weekday]bool
	CleanupSpec     string
	CleanupLocation *time.Location
	PassTimeout     time.Duration
}

func (o *SchedulerOptions) normalize() {
	if o.LateOffset <= 0 {
		o.LateOffset = time.Hour
	}
	if len(o.Weekdays) == 0 {
		o.Weekdays = map[time.Weekday]bool{
			time.Monday: true, time.Tuesday: true, time.Wednesday: true,
			time.Thursday: true, time.Friday: true,
		}
	}
	if o.CleanupSpec == "" {
		o.CleanupSpec = "0 0 * * *"
	}
	if o.CleanupLocation == nil {
		o.CleanupLocation = time.UTC
	}
	if o.PassTimeout <= 0 {
		o.PassTimeout = 10 * time.Minute
	}
}

// Scheduler owns the cron timers. Every minute it compares each company's
// local time against that company's trigger times.
type Scheduler struct {
	cron        *cron.Cron
	notifier    Notifier
	companyRepo company.Repository
	guard       PassGuard
	clock       clock.Clock
	opts        SchedulerOptions
	logger      *zap.Logger

	// base is cancelled by Stop so in-flight passes wind down.
	base   context.Context
	cancel context.CancelFunc
}

func NewScheduler(
	notifier Notifier,
	companyRepo company.Repository,
	guard PassGuard,
	clk clock.Clock,
	opts SchedulerOptions,
	logger ...*zap.Logger,
) *Scheduler {
	l := zap.L().Named("notification.scheduler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.scheduler")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if guard == nil {
		guard = NewMemoryPassGuard()
	}
	opts.normalize()

	base, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(opts.CleanupLocation),
			cron.WithLogger(cronLogger{l.Sugar()}),
			cron.WithChain(cron.Recover(cronLogger{l.Sugar()}), cron.SkipIfStillRunning(cronLogger{l.Sugar()})),
		),
		notifier:    notifier,
		companyRepo: companyRepo,
		guard:       guard,
		clock:       clk,
		opts:        opts,
		logger:      l,
		base:        base,
		cancel:      cancel,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(tickSpec, func() { s.Tick(s.base) }); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.opts.CleanupSpec, func() { s.Cleanup(s.base) }); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("scheduler started",
		zap.Duration("late_offset", s.opts.LateOffset),
		zap.String("cleanup_spec", s.opts.CleanupSpec),
		zap.String("cleanup_tz", s.opts.CleanupLocation.String()),
	)
	return nil
}

// Stop halts the timers and waits for running passes or ctx, whichever
// comes first.
func (s *Scheduler) Stop(ctx context.Context) error {
	cronDone := s.cron.Stop()
	s.cancel()

	select {
	case <-cronDone.Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Tick runs every pass whose window is open for any company.
func (s *Scheduler) Tick(ctx context.Context) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("load companies failed", zap.Error(err))
		return
	}

	now := s.clock.Now()
	for _, c := range companies {
		for _, kind := range DueTriggers(c, now, s.opts.LateOffset, s.opts.Weekdays) {
			if ctx.Err() != nil {
				return
			}
			s.runCompanyPass(ctx, kind, c, now)
		}
	}
}

func (s *Scheduler) runCompanyPass(ctx context.Context, kind Kind, c company.Company, now time.Time) {
	companyID := c.ID.String()
	ok, err := s.guard.Acquire(ctx, kind, companyID, c.Today(now))
	if err != nil {
		s.logger.Error("acquire pass guard failed",
			zap.String("pass", string(kind)),
			zap.String("company_id", companyID),
			zap.Error(err),
		)
		return
	}
	if !ok {
		s.logger.Debug("pass already claimed", zap.String("pass", string(kind)), zap.String("company_id", companyID))
		return
	}

	passCtx, cancel := context.WithTimeout(ctx, s.opts.PassTimeout)
	defer cancel()

	if _, err := s.Run(passCtx, kind, companyID); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("pass failed",
			zap.String("pass", string(kind)),
			zap.String("company_id", companyID),
			zap.Error(err),
		)
	}
}

// Run executes one pass directly. The admin CLI uses it to fire a pass on
// demand.
func (s *Scheduler) Run(ctx context.Context, kind Kind, companyID string) (PassResult, error) {
	switch kind {
	case KindMorning:
		return s.notifier.RunMorningPass(ctx, companyID)
	case KindEvening:
		return s.notifier.RunEveningPass(ctx, companyID)
	case KindLate:
		return s.notifier.RunLateReminderPass(ctx, companyID)
	case KindCleanup:
		return s.notifier.RunCleanupPass(ctx)
	}
	return PassResult{}, ErrUnknownPass
}

func (s *Scheduler) Cleanup(ctx context.Context) {
	if _, err := s.notifier.RunCleanupPass(ctx); err != nil {
		s.logger.Error("cleanup pass failed", zap.Error(err))
	}
}

var ErrUnknownPass = errors.New("notification: unknown pass")

func ParseKind(raw string) (Kind, error) {
	switch k := Kind(raw); k {
	case KindMorning, KindEvening, KindLate, KindCleanup:
		return k, nil
	}
	return "", ErrUnknownPass
}

// DueTriggers lists the passes whose window contains now in the company's
// timezone. A window opens at the trigger time and stays open for the rest of
// the slot, so a skipped tick or a restart still fires the pass later that
// day; PassGuard keeps it to one run per company per day.
//
//	morning: morning .. morning+lateOffset
//	late:    morning+lateOffset .. evening (or midnight when evening is earlier)
//	evening: evening .. midnight
//
// A late reminder that would fall past midnight never fires. Days outside
// weekdays fire nothing.
func DueTriggers(c company.Company, now time.Time, lateOffset time.Duration, weekdays map[time.Weekday]bool) []Kind {
	local := now.In(c.Location())
	if !weekdays[local.Weekday()] {
		return nil
	}
	y, m, d := local.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, local.Location())

	morning, errMorning := company.At(local, c.MorningNotificationTime)
	evening, errEvening := company.At(local, c.EveningNotificationTime)

	var due []Kind
	if errMorning == nil {
		late := morning.Add(lateOffset)
		if within(local, morning, earliest(late, midnight)) {
			due = append(due, KindMorning)
		}
		if late.Before(midnight) {
			lateEnd := midnight
			if errEvening == nil && evening.After(late) {
				lateEnd = evening
			}
			if within(local, late, lateEnd) {
				due = append(due, KindLate)
			}
		}
	}
	if errEvening == nil && within(local, evening, midnight) {
		due = append(due, KindEvening)
	}
	return due
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
